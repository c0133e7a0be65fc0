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

const collectionNews = "news"

type NewsRepository struct {
	col *mongo.Collection
}

func NewNewsRepository(db *mongo.Database) *NewsRepository {
	return &NewsRepository{col: db.Collection(collectionNews)}
}

type newsDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	ExternalLink string             `bson:"external_link,omitempty"`
	Category     string             `bson:"category"`
	AuthorID     string             `bson:"author_id"`
	Likes        []string           `bson:"likes"`
	SavedBy      []string           `bson:"saved_by"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func toNewsDoc(a *domain.NewsArticle) (newsDoc, error) {
	doc := newsDoc{
		Title:        a.Title,
		Description:  a.Description,
		ExternalLink: a.ExternalLink,
		Category:     string(a.Category),
		AuthorID:     a.AuthorID,
		Likes:        a.Likes,
		SavedBy:      a.SavedBy,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	if a.ID != "" {
		oid, err := primitive.ObjectIDFromHex(a.ID)
		if err != nil {
			return newsDoc{}, domain.ErrArticleNotFound
		}
		doc.ID = oid
	}
	return doc, nil
}

func (d newsDoc) toDomain() *domain.NewsArticle {
	a := &domain.NewsArticle{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Description:  d.Description,
		ExternalLink: d.ExternalLink,
		Category:     domain.Category(d.Category),
		AuthorID:     d.AuthorID,
		Likes:        d.Likes,
		SavedBy:      d.SavedBy,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if a.Likes == nil {
		a.Likes = []string{}
	}
	if a.SavedBy == nil {
		a.SavedBy = []string{}
	}
	return a
}

// Create inserts a new article document and returns it with the assigned ID.
func (r *NewsRepository) Create(ctx context.Context, a *domain.NewsArticle) (*domain.NewsArticle, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toNewsDoc(a)
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

func (r *NewsRepository) FindByID(ctx context.Context, id string) (*domain.NewsArticle, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrArticleNotFound
	}

	var doc newsDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// List returns articles matching filter, newest first. The SavedBy filter
// matches documents whose saved_by array contains the user ID.
func (r *NewsRepository) List(ctx context.Context, filter ports.ListArticlesFilter) ([]*domain.NewsArticle, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.SavedBy != "" {
		query["saved_by"] = filter.SavedBy
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	articles := []*domain.NewsArticle{}
	for cur.Next(ctx) {
		var doc newsDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		articles = append(articles, doc.toDomain())
	}
	return articles, cur.Err()
}

// Update replaces the whole document (last-write-wins, see ports docs).
func (r *NewsRepository) Update(ctx context.Context, a *domain.NewsArticle) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toNewsDoc(a)
	if err != nil {
		return err
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrArticleNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the saved filter and the sort.
func (r *NewsRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "saved_by", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
