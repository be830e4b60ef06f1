package collaborator

import (
	"context"
	"directory-service/internal/app/contracts"
	"directory-service/internal/app/models"
	"directory-service/internal/pkg/constvars"
	"directory-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type mongoDirectorySource struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewMongoDirectorySource reads the directory straight from the collections
// the records backend writes to. Sessions are not needed for reading.
func NewMongoDirectorySource(db *mongo.Database, logger *zap.Logger) contracts.DirectorySource {
	return &mongoDirectorySource{
		DB:  db,
		Log: logger,
	}
}

func (s *mongoDirectorySource) FindDoctors(ctx context.Context, session *models.Session) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := s.findAll(ctx, constvars.MongoCollectionDoctors, &doctors)
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *mongoDirectorySource) FindHospitals(ctx context.Context, session *models.Session) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := s.findAll(ctx, constvars.MongoCollectionHospitals, &hospitals)
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (s *mongoDirectorySource) findAll(ctx context.Context, collection string, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("mongoDirectorySource.findAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("collection", collection),
	)

	// Natural order keeps the listing stable between loads.
	cursor, err := s.DB.Collection(collection).Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}}))
	if err != nil {
		s.Log.Error("mongoDirectorySource.findAll error finding documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBFindDocument(err, collection)
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, out)
	if err != nil {
		s.Log.Error("mongoDirectorySource.findAll error iterating documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBIterateDocuments(err, collection)
	}
	return nil
}
