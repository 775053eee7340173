package contracts

type SheetRepository interface {
	SetSheet(sheetId string, grid string) (*Sheet, error)
	GetSheet(sheetId string) (*Sheet, error)
}
