package validators

import "go.mongodb.org/mongo-driver/bson"

var DecisionLogValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"allocation_id",
			"suggested_venue",
			"resolved_by",
			"timestamp",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},

			"allocation_id": bson.M{
				"bsonType": "string",
			},

			"description": bson.M{
				"bsonType":  "string",
				"maxLength": 2000,
			},

			"conflict_details": bson.M{
				"bsonType":  "string",
				"maxLength": 2000,
			},

			"suggested_venue": bson.M{
				"bsonType": "string",
			},

			"resolved_by": bson.M{
				"bsonType": "string",
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"pending",
					"resolved",
					"diverted",
				},
			},

			"timestamp": bson.M{
				"bsonType": "date",
			},
		},
	},
}
