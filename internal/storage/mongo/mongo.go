// Package mongo provides the MongoDB-backed implementation of the
// storage.Storage interface using the official Go driver.
//
// WHY MongoDB?
// ────────────
// The entities here are schema-flexible documents (free-form tag lists,
// open-ended test_scores / requirements maps) addressed by collection
// name and ObjectID. A document store holds them as-is with no
// migration ceremony, and the driver's bson.M filters map one-to-one
// onto the exact-match conjunction the Storage contract promises.
//
// Collection names are the lowercase of the model name: "student",
// "university", "program", "recruiter", "application".
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/metaapply/metaapply-api/internal/config"
	"github.com/metaapply/metaapply-api/internal/storage"
	"github.com/metaapply/metaapply-api/internal/types"
)

const (
	collStudent     = "student"
	collUniversity  = "university"
	collProgram     = "program"
	collRecruiter   = "recruiter"
	collApplication = "application"
)

// Mongo is the concrete implementation of storage.Storage.
// It holds a *mongo.Client, which maintains its own connection pool and
// is safe for concurrent use by multiple goroutines.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to the MongoDB instance described by cfg.Mongo, verifies
// the connection with a ping, and returns a ready-to-use *Mongo.
//
// Connect alone does not guarantee a reachable server — the driver
// dials lazily — so we ping here to fail at boot rather than on the
// first request.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo.New: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo.New: ping: %w", err)
	}

	return &Mongo{
		client: client,
		db:     client.Database(cfg.Mongo.Database),
	}, nil
}

// Close disconnects the underlying client. Call it on shutdown.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ping reports whether the store is currently reachable. Used by the
// health endpoint.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// DatabaseName returns the configured database name (health reporting).
func (m *Mongo) DatabaseName() string {
	return m.db.Name()
}

// insertOne inserts doc into the named collection and returns the hex
// form of the store-assigned ObjectID. The document value is passed by
// value end to end, so the caller's copy is never mutated.
func (m *Mongo) insertOne(ctx context.Context, coll string, doc any) (string, error) {
	res, err := m.db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", coll, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert %s: unexpected id type %T", coll, res.InsertedID)
	}
	return oid.Hex(), nil
}

// find runs an exact-match query against the named collection, capped
// at limit, decoding into out (a pointer to a slice). No sort is
// requested: result order is whatever the store returns.
//
// A non-positive limit matches nothing. The driver would treat 0 as
// "unlimited", which is the opposite of what a cap means here.
func (m *Mongo) find(ctx context.Context, coll string, filter bson.M, limit int64, out any) error {
	if limit <= 0 {
		return nil
	}

	cur, err := m.db.Collection(coll).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return fmt.Errorf("find %s: %w", coll, err)
	}
	defer cur.Close(ctx)

	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("find %s: decode: %w", coll, err)
	}
	return nil
}

func (m *Mongo) CreateStudent(ctx context.Context, s types.Student) (string, error) {
	return m.insertOne(ctx, collStudent, s)
}

func (m *Mongo) GetStudentByID(ctx context.Context, id string) (types.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// The hex codec rejected the identifier — a caller error, not
		// a lookup miss.
		return types.Student{}, storage.ErrInvalidID
	}

	var s types.Student
	err = m.db.Collection(collStudent).FindOne(ctx, bson.M{"_id": oid}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return types.Student{}, storage.ErrStudentNotFound
	}
	if err != nil {
		return types.Student{}, fmt.Errorf("get student %s: %w", id, err)
	}
	return s, nil
}

func (m *Mongo) FindStudents(ctx context.Context, f types.StudentFilter, limit int64) ([]types.Student, error) {
	filter := bson.M{}
	if f.Level != "" {
		filter["level"] = f.Level
	}
	if f.PreferredCountry != "" {
		filter["preferred_country"] = f.PreferredCountry
	}

	students := make([]types.Student, 0)
	if err := m.find(ctx, collStudent, filter, limit, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (m *Mongo) CreateUniversity(ctx context.Context, u types.University) (string, error) {
	return m.insertOne(ctx, collUniversity, u)
}

func (m *Mongo) FindUniversities(ctx context.Context, f types.UniversityFilter, limit int64) ([]types.University, error) {
	filter := bson.M{}
	if f.Country != "" {
		filter["country"] = f.Country
	}

	universities := make([]types.University, 0)
	if err := m.find(ctx, collUniversity, filter, limit, &universities); err != nil {
		return nil, err
	}
	return universities, nil
}

func (m *Mongo) CreateProgram(ctx context.Context, p types.Program) (string, error) {
	return m.insertOne(ctx, collProgram, p)
}

func (m *Mongo) FindPrograms(ctx context.Context, f types.ProgramFilter, limit int64) ([]types.Program, error) {
	filter := bson.M{}
	if f.Level != "" {
		filter["level"] = f.Level
	}
	if f.Field != "" {
		filter["field"] = f.Field
	}
	if f.Country != "" {
		filter["country"] = f.Country
	}

	programs := make([]types.Program, 0)
	if err := m.find(ctx, collProgram, filter, limit, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

func (m *Mongo) CreateRecruiter(ctx context.Context, r types.Recruiter) (string, error) {
	return m.insertOne(ctx, collRecruiter, r)
}

func (m *Mongo) FindRecruiters(ctx context.Context, f types.RecruiterFilter, limit int64) ([]types.Recruiter, error) {
	filter := bson.M{}
	if f.Verified != nil {
		filter["verified"] = *f.Verified
	}

	recruiters := make([]types.Recruiter, 0)
	if err := m.find(ctx, collRecruiter, filter, limit, &recruiters); err != nil {
		return nil, err
	}
	return recruiters, nil
}

func (m *Mongo) CreateApplication(ctx context.Context, a types.Application) (string, error) {
	return m.insertOne(ctx, collApplication, a)
}

func (m *Mongo) FindApplications(ctx context.Context, f types.ApplicationFilter, limit int64) ([]types.Application, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.StudentID != "" {
		filter["student_id"] = f.StudentID
	}
	if f.ProgramID != "" {
		filter["program_id"] = f.ProgramID
	}

	applications := make([]types.Application, 0)
	if err := m.find(ctx, collApplication, filter, limit, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}
