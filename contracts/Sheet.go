package contracts

import "errors"

type Sheet struct {
	Grid   string `json:"grid"`
	Result string `json:"result"`
}

var SheetNotFoundError = errors.New("sheet not found")
