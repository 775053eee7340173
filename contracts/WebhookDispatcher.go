package contracts

type WebhookDispatcher interface {
	SetWebhookUrl(sheetId string, webhookUrl string)
	GetWebhookUrl(sheetId string) string
	Notify(sheetId string, sheet *Sheet)
	Start()
	Close()
}
