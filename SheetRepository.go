package main

import (
	"fmt"
	"strings"

	"go.etcd.io/bbolt"

	"gridSheetCalc/contracts"
)

var sheetsBucket = []byte("sheets")

// SheetRepository stores evaluated sheets in bbolt: one bucket, key is the
// lowercased sheet id, value is the serialized (grid, result) record.
type SheetRepository struct {
	db         *bbolt.DB
	calculator contracts.GridCalculator
	serializer contracts.SheetSerializer
	dispatcher contracts.WebhookDispatcher
}

func NewSheetRepository(
	db *bbolt.DB, calculator contracts.GridCalculator,
	serializer contracts.SheetSerializer, dispatcher contracts.WebhookDispatcher,
) *SheetRepository {
	return &SheetRepository{
		db:         db,
		calculator: calculator,
		serializer: serializer,
		dispatcher: dispatcher,
	}
}

func (s *SheetRepository) SetSheet(sheetId string, grid string) (sheet *contracts.Sheet, err error) {
	sheetId = strings.ToLower(sheetId)

	sheet = &contracts.Sheet{Grid: grid}
	sheet.Result, err = s.calculator.Calculate(grid)
	if err != nil {
		return
	}

	serializedData := s.serializer.Marshal(sheet.Grid, sheet.Result)

	err = s.db.Batch(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(sheetsBucket)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(sheetId), serializedData)
	})

	if err == nil && s.dispatcher != nil {
		s.dispatcher.Notify(sheetId, sheet)
	}

	return
}

func (s *SheetRepository) GetSheet(sheetId string) (sheet *contracts.Sheet, err error) {
	sheetId = strings.ToLower(sheetId)

	sheet = &contracts.Sheet{}

	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(sheetsBucket)
		if bucket == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		byteValue := bucket.Get([]byte(sheetId))
		if byteValue == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		var err error
		sheet.Grid, sheet.Result, err = s.serializer.Unmarshal(byteValue)
		return err
	})

	return
}
