package contracts

type SheetSerializer interface {
	Marshal(grid string, result string) []byte
	Unmarshal([]byte) (grid string, result string, err error)
}
