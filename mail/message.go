package mail

import (
	"bytes"
	"fmt"
	"time"

	msgmail "github.com/emersion/go-message/mail"
)

// compose renders msg as RFC 5322 bytes: headers plus a text/plain UTF-8 body.
func compose(msg Message) ([]byte, error) {
	var buf bytes.Buffer

	var h msgmail.Header
	h.SetDate(time.Now())
	h.SetAddressList("From", []*msgmail.Address{{Address: msg.Username}})

	toAddrs := make([]*msgmail.Address, 0, len(msg.To))
	for _, addr := range msg.To {
		toAddrs = append(toAddrs, &msgmail.Address{Address: addr})
	}
	h.SetAddressList("To", toAddrs)

	h.SetSubject(msg.Subject)

	messageID := fmt.Sprintf("<%d.%s@%s>", time.Now().UnixNano(), msg.Username, msg.Server)
	h.Set("Message-ID", messageID)

	h.SetContentType("text/plain", map[string]string{"charset": "utf-8"})
	mw, err := msgmail.CreateWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("failed to create message writer: %w", err)
	}

	var textHeader msgmail.InlineHeader
	textHeader.SetContentType("text/plain", map[string]string{"charset": "utf-8"})
	textPart, err := mw.CreateSingleInline(textHeader)
	if err != nil {
		mw.Close()
		return nil, fmt.Errorf("failed to create text part: %w", err)
	}
	if _, err := textPart.Write([]byte(msg.Body)); err != nil {
		mw.Close()
		return nil, fmt.Errorf("failed to write body: %w", err)
	}
	textPart.Close()
	mw.Close()

	return buf.Bytes(), nil
}
