package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techconnect/techconnect-api/internal/core/domain"
	"github.com/techconnect/techconnect-api/internal/core/ports"
)

const collectionProjects = "projects"

type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(collectionProjects)}
}

// projectDoc is the persisted shape. Author and engagement references are
// stored as hex user IDs; comments are embedded by value.
type projectDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	GithubLink   string             `bson:"github_link,omitempty"`
	LinkedinLink string             `bson:"linkedin_link,omitempty"`
	Tags         []string           `bson:"tags"`
	AuthorID     string             `bson:"author_id"`
	Likes        []string           `bson:"likes"`
	Comments     []domain.Comment   `bson:"comments"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func toProjectDoc(p *domain.Project) (projectDoc, error) {
	doc := projectDoc{
		Title:        p.Title,
		Description:  p.Description,
		GithubLink:   p.GithubLink,
		LinkedinLink: p.LinkedinLink,
		Tags:         p.Tags,
		AuthorID:     p.AuthorID,
		Likes:        p.Likes,
		Comments:     p.Comments,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.ID != "" {
		oid, err := primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			return projectDoc{}, domain.ErrProjectNotFound
		}
		doc.ID = oid
	}
	return doc, nil
}

func (d projectDoc) toDomain() *domain.Project {
	p := &domain.Project{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Description:  d.Description,
		GithubLink:   d.GithubLink,
		LinkedinLink: d.LinkedinLink,
		Tags:         d.Tags,
		AuthorID:     d.AuthorID,
		Likes:        d.Likes,
		Comments:     d.Comments,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if p.Likes == nil {
		p.Likes = []string{}
	}
	if p.Comments == nil {
		p.Comments = []domain.Comment{}
	}
	return p
}

// Create inserts a new project document and returns it with the assigned ID.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toProjectDoc(p)
	if err != nil {
		return nil, err
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	var doc projectDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// List returns projects matching filter, newest first.
func (r *ProjectRepository) List(ctx context.Context, filter ports.ListProjectsFilter) ([]*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.AuthorID != "" {
		query["author_id"] = filter.AuthorID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	projects := []*domain.Project{}
	for cur.Next(ctx) {
		var doc projectDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		projects = append(projects, doc.toDomain())
	}
	return projects, cur.Err()
}

// Update replaces the whole document. Concurrent writers race with
// last-write-wins semantics at document granularity.
func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toProjectDoc(p)
	if err != nil {
		return err
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// Delete removes the project and, with it, its embedded comments.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the author filter and the sort.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
