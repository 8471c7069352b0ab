package validators

import "go.mongodb.org/mongo-driver/bson"

var NotificationValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"type",
			"title",
			"message",
			"timetable_id",
			"is_read",
			"time",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},

			"type": bson.M{
				"bsonType": "string",
				"enum": []string{
					"conflict",
				},
			},

			"title": bson.M{
				"bsonType":  "string",
				"maxLength": 200,
			},

			"message": bson.M{
				"bsonType":  "string",
				"maxLength": 2000,
			},

			"lecturer_id": bson.M{
				"bsonType": "string",
			},

			"student_id": bson.M{
				"bsonType": "string",
			},

			"admin_id": bson.M{
				"bsonType": "string",
			},

			"timetable_id": bson.M{
				"bsonType": "string",
			},

			"is_read": bson.M{
				"bsonType": "bool",
			},

			"time": bson.M{
				"bsonType": "date",
			},
		},
	},
}
