package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.etcd.io/bbolt"

	"gridSheetCalc/contracts"
	"gridSheetCalc/mocks"
)

func TestSheetRepository(t *testing.T) {
	t.Run("set_and_get", func(t *testing.T) {
		db := _openTestDatabase(t)
		defer db.Close()

		dispatcher := mocks.NewWebhookDispatcher(t)
		dispatcher.On("Notify", "budget", mock.Anything).Return()

		repository := NewSheetRepository(db, NewGridCalculator(), NewSheetBinarySerializer(), dispatcher)

		stored, err := repository.SetSheet("budget", "1 | =A0+1")
		assert.NoError(t, err)
		assert.Equal(t, "1 | =A0+1", stored.Grid)
		assert.Equal(t, "1.000000 | 2.000000\n", stored.Result)

		fetched, err := repository.GetSheet("budget")
		assert.NoError(t, err)
		assert.Equal(t, stored, fetched)
	})

	t.Run("sheet_id_is_case_insensitive", func(t *testing.T) {
		db := _openTestDatabase(t)
		defer db.Close()

		dispatcher := mocks.NewWebhookDispatcher(t)
		dispatcher.On("Notify", "budget", mock.Anything).Return()

		repository := NewSheetRepository(db, NewGridCalculator(), NewSheetBinarySerializer(), dispatcher)

		_, err := repository.SetSheet("BUDGET", "5")
		assert.NoError(t, err)

		fetched, err := repository.GetSheet("Budget")
		assert.NoError(t, err)
		assert.Equal(t, "5", fetched.Grid)
	})

	t.Run("get_missing_sheet", func(t *testing.T) {
		db := _openTestDatabase(t)
		defer db.Close()

		repository := NewSheetRepository(db, NewGridCalculator(), NewSheetBinarySerializer(), nil)

		_, err := repository.GetSheet("nothing")

		assert.Error(t, err)
		assert.ErrorIs(t, err, contracts.SheetNotFoundError)
	})

	t.Run("engine_error_stores_nothing", func(t *testing.T) {
		db := _openTestDatabase(t)
		defer db.Close()

		// no Notify expectation: the dispatcher must stay silent
		dispatcher := mocks.NewWebhookDispatcher(t)

		repository := NewSheetRepository(db, NewGridCalculator(), NewSheetBinarySerializer(), dispatcher)

		_, err := repository.SetSheet("broken", "=1+")
		assert.Error(t, err)
		assert.ErrorIs(t, err, ParseError)

		_, err = repository.GetSheet("broken")
		assert.ErrorIs(t, err, contracts.SheetNotFoundError)
	})

	t.Run("set_overwrites_previous_grid", func(t *testing.T) {
		db := _openTestDatabase(t)
		defer db.Close()

		repository := NewSheetRepository(db, NewGridCalculator(), NewSheetBinarySerializer(), nil)

		_, err := repository.SetSheet("sheet", "1")
		assert.NoError(t, err)

		_, err = repository.SetSheet("sheet", "2")
		assert.NoError(t, err)

		fetched, err := repository.GetSheet("sheet")
		assert.NoError(t, err)
		assert.Equal(t, "2", fetched.Grid)
		assert.Equal(t, "2.000000\n", fetched.Result)
	})
}

func _openTestDatabase(t *testing.T) *bbolt.DB {
	f, err := os.CreateTemp("", "db_*.db")
	assert.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(f.Name()) })

	db, err := bbolt.Open(f.Name(), 0600, nil)
	assert.NoError(t, err)

	return db
}
