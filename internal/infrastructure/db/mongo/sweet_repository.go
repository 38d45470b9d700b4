package mongo

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
	"github.com/sweetshop/sweet-shop-api/internal/core/ports"
)

const sweetCollection = "sweets"

// SweetRepository implements ports.SweetRepository against the sweets
// collection. Stock mutations are expressed as single conditional updates so
// the quantity invariant holds under concurrent requests.
type SweetRepository struct {
	coll *mongo.Collection
}

func NewSweetRepository(db *mongo.Database) *SweetRepository {
	return &SweetRepository{coll: db.Collection(sweetCollection)}
}

type mongoSweet struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Category string             `bson:"category"`
	Price    float64            `bson:"price"`
	Quantity int64              `bson:"quantity"`
}

func (m mongoSweet) toDomain() *domain.Sweet {
	return &domain.Sweet{
		ID:       m.ID.Hex(),
		Name:     m.Name,
		Category: m.Category,
		Price:    m.Price,
		Quantity: m.Quantity,
	}
}

// parseID converts a caller-facing id into an ObjectID. A syntactically
// invalid id resolves to no record, never to an internal error.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrSweetNotFound
	}
	return oid, nil
}

func (r *SweetRepository) Create(ctx context.Context, sweet *domain.Sweet) (*domain.Sweet, error) {
	if sweet.Price < 0 || sweet.Quantity < 0 {
		return nil, domain.ErrInvalidSweet
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSweet{
		Name:     sweet.Name,
		Category: sweet.Category,
		Price:    sweet.Price,
		Quantity: sweet.Quantity,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, storeErr("insert sweet", err)
	}

	created := *sweet
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *SweetRepository) List(ctx context.Context) ([]*domain.Sweet, error) {
	return r.find(ctx, bson.M{})
}

func (r *SweetRepository) Search(ctx context.Context, filter ports.SearchFilter) ([]*domain.Sweet, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": regexp.QuoteMeta(filter.Name), "$options": "i"}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	return r.find(ctx, query)
}

func (r *SweetRepository) find(ctx context.Context, query bson.M) ([]*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, storeErr("find sweets", err)
	}
	defer cursor.Close(ctx)

	sweets := make([]*domain.Sweet, 0)
	for cursor.Next(ctx) {
		var m mongoSweet
		if err := cursor.Decode(&m); err != nil {
			return nil, storeErr("decode sweet", err)
		}
		sweets = append(sweets, m.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, storeErr("iterate sweets", err)
	}
	return sweets, nil
}

// Purchase decrements the stock count by one in a single conditional update:
// the quantity > 0 guard is part of the filter, so concurrent purchases can
// never interleave a stale read and drive the count negative.
func (r *SweetRepository) Purchase(ctx context.Context, id string) (*domain.Sweet, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoSweet
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "quantity": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"quantity": -1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if err == nil {
		return m.toDomain(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storeErr("purchase sweet", err)
	}

	// The conditional update missed: either the sweet does not exist or its
	// stock is exhausted. The follow-up read only selects the error to
	// return; the decrement above stays atomic either way.
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, storeErr("purchase sweet", err)
	}
	if count == 0 {
		return nil, domain.ErrSweetNotFound
	}
	return nil, domain.ErrOutOfStock
}

// Restock increments the stock count atomically. The amount is re-validated
// here even though the surface checks it first.
func (r *SweetRepository) Restock(ctx context.Context, id string, amount int64) (*domain.Sweet, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoSweet
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"quantity": amount}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, storeErr("restock sweet", err)
	}
	return m.toDomain(), nil
}

func (r *SweetRepository) Update(ctx context.Context, id string, patch domain.SweetPatch) (*domain.Sweet, error) {
	if (patch.Price != nil && *patch.Price < 0) || (patch.Quantity != nil && *patch.Quantity < 0) {
		return nil, domain.ErrInvalidSweet
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Quantity != nil {
		set["quantity"] = *patch.Quantity
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if len(set) == 0 {
		// Nothing to merge; return the current record.
		var m mongoSweet
		if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, domain.ErrSweetNotFound
			}
			return nil, storeErr("find sweet", err)
		}
		return m.toDomain(), nil
	}

	var m mongoSweet
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, storeErr("update sweet", err)
	}
	return m.toDomain(), nil
}

func (r *SweetRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return storeErr("delete sweet", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSweetNotFound
	}
	return nil
}
