package main

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"
	"time"

	json "github.com/bytedance/sonic"

	"gridSheetCalc/contracts"
)

const WebhookWorkersCount = 5

type WebhookSendCommand struct {
	Webhook string
	Sheet   *contracts.Sheet
}

// WebhookDispatcher posts re-evaluated sheets to subscribed URLs from a
// small worker pool, off the request path.
type WebhookDispatcher struct {
	queue    chan WebhookSendCommand
	mutex    sync.RWMutex
	webhooks map[string]string
}

func NewWebhookDispatcher() *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:    make(chan WebhookSendCommand, 20),
		webhooks: map[string]string{},
	}
}

func (manager *WebhookDispatcher) SetWebhookUrl(sheetId string, webhookUrl string) {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	if webhookUrl == "" {
		delete(manager.webhooks, sheetId)
	} else {
		manager.webhooks[sheetId] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(sheetId string) string {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	return manager.webhooks[sheetId]
}

func (manager *WebhookDispatcher) Notify(sheetId string, sheet *contracts.Sheet) {
	if manager.GetWebhookUrl(sheetId) == "" {
		return
	}

	go manager.addToQueue(sheetId, sheet)
}

func (manager *WebhookDispatcher) addToQueue(sheetId string, sheet *contracts.Sheet) {
	if webhook := manager.GetWebhookUrl(sheetId); webhook != "" {
		manager.queue <- WebhookSendCommand{
			Webhook: webhook,
			Sheet:   sheet,
		}
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		go manager.runWebhookSenderWorker()
	}
}

func (manager *WebhookDispatcher) Close() {
	close(manager.queue)
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	client := &http.Client{
		Timeout: time.Second * 5,
	}

	var response *http.Response
	var err error

	for command := range manager.queue {
		payload, _ := json.Marshal(command.Sheet)
		response, err = client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))

		if err != nil {
			fmt.Printf("Webhook send error: %s\n", err)
		} else if response.StatusCode >= 300 {
			fmt.Printf("Unexpected webhook response HTTP status: %s\n", response.Status)
		}
	}
}
