package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type Client struct {
	token      string
	httpClient *http.Client
	baseURL    string
	log        *zerolog.Logger
}

func NewClient(token string, logger *zerolog.Logger) *Client {
	return &Client{
		token:      token,
		httpClient: &http.Client{Timeout: 65 * time.Second},
		baseURL:    fmt.Sprintf("https://api.telegram.org/bot%s", token),
		log:        logger,
	}
}

func (c *Client) call(method string, payload interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+"/"+method, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(data, &apiResp); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	if !apiResp.OK {
		return nil, fmt.Errorf("telegram: %s", apiResp.Description)
	}

	return apiResp.Result, nil
}

// IsMember reports whether the user currently belongs to the channel.
// Every failure path (unknown channel, user not in chat, transport error)
// counts as "not a member": membership checks fail closed.
func (c *Client) IsMember(userID int64, channelID string) bool {
	if channelID == "" {
		return false
	}
	result, err := c.call("getChatMember", map[string]interface{}{
		"chat_id": channelID,
		"user_id": userID,
	})
	if err != nil {
		c.log.Warn().Err(err).Int64("user", userID).Str("channel", channelID).
			Msg("Membership check failed")
		return false
	}

	var member chatMember
	if err := json.Unmarshal(result, &member); err != nil {
		return false
	}
	switch member.Status {
	case "member", "administrator", "creator":
		return true
	}
	return false
}

func (c *Client) SendMessage(chatID int64, text string) (int64, error) {
	result, err := c.call("sendMessage", sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return 0, err
	}
	var msg messageResult
	if err := json.Unmarshal(result, &msg); err != nil {
		return 0, err
	}
	return msg.MessageID, nil
}

// CopyMessage re-sends a stored message to chatID and returns the new
// message id.
func (c *Client) CopyMessage(chatID, fromChatID, messageID int64) (int64, error) {
	result, err := c.call("copyMessage", copyMessageRequest{
		ChatID:     chatID,
		FromChatID: fromChatID,
		MessageID:  messageID,
	})
	if err != nil {
		return 0, err
	}
	var msg messageResult
	if err := json.Unmarshal(result, &msg); err != nil {
		return 0, err
	}
	return msg.MessageID, nil
}

func (c *Client) DeleteMessage(chatID, messageID int64) error {
	_, err := c.call("deleteMessage", deleteMessageRequest{ChatID: chatID, MessageID: messageID})
	return err
}

func (c *Client) GetUpdates(offset int64, timeout int) ([]Update, error) {
	result, err := c.call("getUpdates", getUpdatesRequest{Offset: offset, Timeout: timeout})
	if err != nil {
		return nil, err
	}
	var updates []Update
	if err := json.Unmarshal(result, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}
