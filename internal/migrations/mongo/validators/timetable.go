package validators

import "go.mongodb.org/mongo-driver/bson"

var TimetableValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"date",
			"start_time",
			"end_time",
			"room",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},

			"course_code": bson.M{
				"bsonType":  "string",
				"maxLength": 20,
			},

			"lecturer_id": bson.M{
				"bsonType": "string",
			},

			"students": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "string",
				},
			},

			"room": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"date": bson.M{
				"bsonType": "string",
			},

			// 12-hour clock strings, e.g. "10:00 AM".
			"start_time": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{1,2}:\d{2} [AP]M$`,
			},

			"end_time": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{1,2}:\d{2} [AP]M$`,
			},

			"conflict": bson.M{
				"bsonType": "bool",
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"pending",
					"resolved",
					"diverted",
				},
			},

			"resolved_venue": bson.M{
				"bsonType": "string",
			},

			"resolved_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
