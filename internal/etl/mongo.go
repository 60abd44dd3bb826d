package etl

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/BartekS5/tabconv/pkg/database"
	"github.com/BartekS5/tabconv/pkg/logger"
	"github.com/BartekS5/tabconv/pkg/models"
	"github.com/BartekS5/tabconv/pkg/utils"
)

// MongoLoader replaces a collection with one document per table row.
type MongoLoader struct {
	URI        string
	Database   string
	Collection string
}

func (m *MongoLoader) Load(ctx context.Context, table *models.Table) error {
	if m.Collection == "" {
		return ErrMissingTableName
	}

	client, err := database.ConnectMongo(ctx, m.URI)
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	coll := client.Database(m.Database).Collection(m.Collection)
	if err := coll.Drop(ctx); err != nil {
		return fmt.Errorf("failed to drop collection %s: %w", m.Collection, err)
	}
	if table.NumRows() == 0 {
		return nil
	}

	docs := make([]interface{}, table.NumRows())
	for i := range docs {
		doc := make(bson.D, 0, table.NumColumns())
		for _, c := range table.Columns {
			doc = append(doc, bson.E{Key: c.Name, Value: c.Values[i]})
		}
		docs[i] = doc
	}

	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("failed to insert into collection %s: %w", m.Collection, err)
	}
	logger.Infof("Mongo Loader: inserted %d documents into %s", len(res.InsertedIDs), m.Collection)
	return nil
}

// MongoExtractor reads every document of a collection. Top-level fields
// become columns in first-seen order; _id is dropped.
type MongoExtractor struct {
	URI        string
	Database   string
	Collection string
}

func (m *MongoExtractor) Extract(ctx context.Context) (*models.Table, error) {
	client, err := database.ConnectMongo(ctx, m.URI)
	if err != nil {
		return nil, err
	}
	defer client.Disconnect(context.Background())

	coll := client.Database(m.Database).Collection(m.Collection)
	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return documentsToTable(ctx, cursor)
}

type documentCursor interface {
	Next(ctx context.Context) bool
	Decode(val interface{}) error
	Err() error
}

var _ documentCursor = (*mongo.Cursor)(nil)

func documentsToTable(ctx context.Context, cursor documentCursor) (*models.Table, error) {
	table := models.NewTable()
	rows := 0
	for cursor.Next(ctx) {
		var doc bson.D
		if err := cursor.Decode(&doc); err != nil {
			logger.Errorf("Error decoding mongo doc: %v", err)
			continue
		}
		for _, e := range doc {
			if e.Key == "_id" {
				continue
			}
			c := table.Column(e.Key)
			if c == nil {
				c = &models.Column{Name: e.Key, Values: make([]interface{}, rows)}
				table.Columns = append(table.Columns, c)
			}
			if len(c.Values) == rows {
				c.Values = append(c.Values, utils.NormalizeValue(e.Value))
			}
		}
		rows++
		for _, c := range table.Columns {
			if len(c.Values) < rows {
				c.Values = append(c.Values, nil)
			}
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	for _, c := range table.Columns {
		c.Values = utils.UnifyColumn(c.Values)
	}
	return table, nil
}
