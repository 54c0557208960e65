package catalog

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoCloseTimeout = 5 * time.Second

// MongoCatalog serves the read-only catalog out of MongoDB.
type MongoCatalog struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewMongoCatalog(ctx context.Context, uri, database, collection string) (*MongoCatalog, error) {
	if uri == "" {
		return nil, errors.New("mongo uri is required")
	}
	if database == "" {
		return nil, errors.New("mongo database name is required")
	}
	if collection == "" {
		return nil, errors.New("mongo collection name is required")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &MongoCatalog{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

type mongoProfile struct {
	ID              string   `bson:"_id"`
	Name            string   `bson:"name"`
	Description     string   `bson:"description"`
	LongDescription string   `bson:"long_description"`
	Price           float64  `bson:"price"`
	Currency        string   `bson:"currency"`
	Rating          float64  `bson:"rating"`
	TotalUses       int      `bson:"total_uses"`
	Author          string   `bson:"author"`
	Category        string   `bson:"category"`
	Image           string   `bson:"image"`
	Tags            []string `bson:"tags"`
	Verified        bool     `bson:"verified"`
	CreatedAt       string   `bson:"created_at"`
}

func (mp mongoProfile) profile() Profile {
	return Profile{
		ID:              mp.ID,
		Name:            mp.Name,
		Description:     mp.Description,
		LongDescription: mp.LongDescription,
		Price:           mp.Price,
		Currency:        mp.Currency,
		Rating:          mp.Rating,
		TotalUses:       mp.TotalUses,
		Author:          mp.Author,
		Category:        Category(mp.Category),
		Image:           mp.Image,
		Tags:            mp.Tags,
		Verified:        mp.Verified,
		CreatedAt:       mp.CreatedAt,
	}
}

// Seed replaces the stored documents for the given profiles.
func (mc *MongoCatalog) Seed(ctx context.Context, profiles []Profile) error {
	if mc == nil || mc.collection == nil {
		return nil
	}
	for _, p := range profiles {
		doc := mongoProfile{
			ID:              p.ID,
			Name:            p.Name,
			Description:     p.Description,
			LongDescription: p.LongDescription,
			Price:           p.Price,
			Currency:        p.Currency,
			Rating:          p.Rating,
			TotalUses:       p.TotalUses,
			Author:          p.Author,
			Category:        string(p.Category),
			Image:           p.Image,
			Tags:            p.Tags,
			Verified:        p.Verified,
			CreatedAt:       p.CreatedAt,
		}
		opts := options.Replace().SetUpsert(true)
		if _, err := mc.collection.ReplaceOne(ctx, bson.M{"_id": p.ID}, doc, opts); err != nil {
			return err
		}
	}
	return nil
}

// List returns every profile ordered by id.
func (mc *MongoCatalog) List(ctx context.Context) ([]Profile, error) {
	if mc == nil || mc.collection == nil {
		return nil, nil
	}
	findOpts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := mc.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []Profile
	for cursor.Next(ctx) {
		var mp mongoProfile
		if err := cursor.Decode(&mp); err != nil {
			return nil, err
		}
		profiles = append(profiles, mp.profile())
	}
	return profiles, cursor.Err()
}

// Get retrieves one profile by id.
func (mc *MongoCatalog) Get(ctx context.Context, id string) (Profile, error) {
	if mc == nil || mc.collection == nil {
		return Profile{}, ErrNotFound
	}
	var mp mongoProfile
	err := mc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&mp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, err
	}
	return mp.profile(), nil
}

// Close disconnects the client.
func (mc *MongoCatalog) Close() error {
	if mc == nil || mc.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), mongoCloseTimeout)
	defer cancel()
	return mc.client.Disconnect(ctx)
}
