package configs

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"job-portal-service/internal/models"
)

const namespaceNotFound = 26

// CollectionSchema pairs a collection with the $jsonSchema its validator enforces.
type CollectionSchema struct {
	Name   string
	Schema bson.M
}

func str() bson.M { return bson.M{"bsonType": "string"} }

func applicantSchema() bson.M {
	return bson.M{
		"bsonType": "array",
		"items": bson.M{
			"bsonType": "object",
			"required": bson.A{"id"},
			"properties": bson.M{
				"id":    str(),
				"email": str(),
			},
		},
	}
}

func jobPostSchema() bson.M {
	return bson.M{
		"bsonType": "object",
		"required": bson.A{"designation", "description"},
		"properties": bson.M{
			"_jobId":      bson.M{"bsonType": "objectId"},
			"designation": str(),
			"description": str(),
			"category":    str(),
			"position":    str(),
			"setup":       str(),
			"payment":     str(),
			"urgent":      bson.M{"bsonType": "bool"},
			"minSalary":   bson.M{"bsonType": "number"},
			"maxSalary":   bson.M{"bsonType": "number"},
			"applicants":  applicantSchema(),
			"invited":     applicantSchema(),
		},
	}
}

// PortalSchemas returns the validators of the job-portal database.
func PortalSchemas() []CollectionSchema {
	schemas := []CollectionSchema{
		{
			Name: "users",
			Schema: bson.M{
				"bsonType": "object",
				"required": bson.A{"email", "password", "role"},
				"properties": bson.M{
					"email":    str(),
					"password": str(),
					"role": bson.M{
						"bsonType": "object",
						"required": bson.A{"role"},
						"properties": bson.M{
							"role": bson.M{"enum": bson.A{models.RoleEmployer, models.RoleCandidate}},
							"data": bson.M{
								"bsonType": "object",
								"properties": bson.M{
									"job_posts": bson.M{
										"bsonType": "array",
										"items":    jobPostSchema(),
									},
									"employerInfo":  bson.M{"bsonType": "object"},
									"candidateInfo": bson.M{"bsonType": "object"},
								},
							},
						},
					},
				},
			},
		},
		{
			Name: "jobList",
			Schema: bson.M{
				"bsonType": "object",
				"required": bson.A{"designation", "description"},
				"properties": bson.M{
					"designation": str(),
					"description": str(),
				},
			},
		},
	}
	for _, kind := range models.ReferenceKinds {
		schemas = append(schemas, CollectionSchema{
			Name: kind.Collection,
			Schema: bson.M{
				"bsonType":   "object",
				"required":   bson.A{kind.Field},
				"properties": bson.M{kind.Field: str()},
			},
		})
	}
	return schemas
}

// EmployeeSchemas returns the validators of the legacy employees database.
func EmployeeSchemas() []CollectionSchema {
	return []CollectionSchema{{
		Name: "employees",
		Schema: bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "position", "level"},
			"properties": bson.M{
				"name":     str(),
				"position": bson.M{"bsonType": "string", "minLength": 5},
				"level": bson.M{
					"bsonType": "object",
					"required": bson.A{"level"},
					"properties": bson.M{
						"level": bson.M{"enum": bson.A{"junior", "mid", "senior"}},
						"details": bson.M{
							"bsonType": "object",
							"properties": bson.M{
								"job_posts": bson.M{
									"bsonType": "array",
									"items": bson.M{
										"bsonType": "object",
										"required": bson.A{"designation", "description"},
										"properties": bson.M{
											"designation": str(),
											"description": str(),
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}}
}

// EnsureSchemas attaches each validator, creating the collection when it does
// not exist yet. Failures are logged and skipped.
func EnsureSchemas(ctx context.Context, db *mongo.Database, schemas []CollectionSchema) {
	for _, s := range schemas {
		if err := applyValidator(ctx, db, s); err != nil {
			log.Warn().Err(err).Str("collection", s.Name).Msg("Could not apply schema validator")
			continue
		}
		log.Debug().Str("collection", s.Name).Msg("Schema validator applied")
	}
}

func applyValidator(ctx context.Context, db *mongo.Database, s CollectionSchema) error {
	validator := bson.M{"$jsonSchema": s.Schema}
	err := db.RunCommand(ctx, bson.D{
		{Key: "collMod", Value: s.Name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
	}).Err()
	if err == nil || !isNamespaceNotFound(err) {
		return err
	}
	opts := options.CreateCollection().
		SetValidator(validator).
		SetValidationLevel("moderate")
	return db.CreateCollection(ctx, s.Name, opts)
}

func isNamespaceNotFound(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == namespaceNotFound || cmdErr.Name == "NamespaceNotFound"
	}
	return false
}

// EnsureIndexes creates the unique email index on users. Existing duplicate
// emails make it fail; that is logged and signup falls back to the lookup check.
func EnsureIndexes(ctx context.Context, db *mongo.Database) {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Could not create unique email index")
	}
}
