package adapters

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"digital_mechanic/internal/feature/vehicles/domain/entity"
	"digital_mechanic/internal/feature/vehicles/usecase"
)

// CarsCollection はMongoDB上の車両コレクション名です。
const CarsCollection = "cars"

// carDocument はcarsコレクションのドキュメント形式です。
type carDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	UserID    bson.ObjectID `bson:"userId"`
	Make      string        `bson:"make"`
	Model     string        `bson:"model"`
	Year      int           `bson:"year"`
	CreatedAt time.Time     `bson:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt"`
}

func (d *carDocument) toEntity() entity.Vehicle {
	return entity.Vehicle{
		ID:        d.ID.Hex(),
		OwnerID:   d.UserID.Hex(),
		Make:      d.Make,
		Model:     d.Model,
		Year:      d.Year,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func carDocumentFromEntity(v *entity.Vehicle) (*carDocument, error) {
	owner, err := bson.ObjectIDFromHex(v.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("owner id: %w", err)
	}
	doc := &carDocument{
		UserID:    owner,
		Make:      v.Make,
		Model:     v.Model,
		Year:      v.Year,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
	if v.ID != "" {
		if doc.ID, err = bson.ObjectIDFromHex(v.ID); err != nil {
			return nil, fmt.Errorf("vehicle id: %w", err)
		}
	}
	return doc, nil
}

// vehicleMongo はVehicleRepositoryインターフェースのMongoDB実装です。
type vehicleMongo struct {
	coll *mongo.Collection
	now  func() time.Time
}

var _ usecase.VehicleRepository = (*vehicleMongo)(nil)

// NewVehicleMongoRepository はdbのcarsコレクションを使うリポジトリを生成します。
func NewVehicleMongoRepository(db *mongo.Database) *vehicleMongo {
	return &vehicleMongo{coll: db.Collection(CarsCollection), now: time.Now}
}

// EnsureIndexes は所有者ごとの一覧取得用インデックスを作成します。
func (r *vehicleMongo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	return err
}

// Create は車両ドキュメントを挿入し、IDとタイムスタンプをvに反映します。
func (r *vehicleMongo) Create(ctx context.Context, v *entity.Vehicle) error {
	doc, err := carDocumentFromEntity(v)
	if err != nil {
		return err
	}
	if doc.ID.IsZero() {
		doc.ID = bson.NewObjectID()
	}
	// millisecond precision matches what BSON dates store
	now := r.now().UTC().Truncate(time.Millisecond)
	doc.CreatedAt, doc.UpdatedAt = now, now

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	*v = doc.toEntity()
	return nil
}

// FindByOwner は登録順(createdAt, _id)に所有者の車両を返します。
func (r *vehicleMongo) FindByOwner(ctx context.Context, ownerID string) ([]entity.Vehicle, error) {
	owner, err := bson.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, fmt.Errorf("owner id: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.D{{Key: "userId", Value: owner}}, opts)
	if err != nil {
		return nil, err
	}

	var docs []carDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]entity.Vehicle, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toEntity())
	}
	return out, nil
}
