// Package mail sends single outbound emails over authenticated STARTTLS
// SMTP sessions. Every send is self-contained: the session and the
// credentials live only for the duration of one call.
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	netmail "net/mail"
	"strconv"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

// Error kinds surfaced to callers. Wrap-checked with errors.Is.
var (
	// ErrInvalidRecipient means a recipient address failed syntax validation.
	ErrInvalidRecipient = errors.New("invalid recipient address")

	// ErrConnection means the SMTP server could not be reached.
	ErrConnection = errors.New("failed to connect to SMTP server")

	// ErrAuth means the SMTP server rejected the credentials.
	ErrAuth = errors.New("SMTP authentication failed")

	// ErrSend means the session was established but the message was not accepted.
	ErrSend = errors.New("failed to send email")
)

// Message is one outbound email together with the SMTP endpoint and
// credentials used to send it. A Message is built per call and discarded
// when the call returns; nothing in it is retained by the Client.
type Message struct {
	Server   string
	Port     int
	Username string
	Password string

	To      []string
	Subject string
	Body    string
}

// session is the subset of *smtp.Client the sender uses; tests inject fakes.
type session interface {
	Auth(a sasl.Client) error
	SendMail(from string, to []string, r io.Reader) error
	Quit() error
	Close() error
}

var _ session = (*smtp.Client)(nil)

// Client sends emails. It holds no per-message state and is safe for
// concurrent use.
type Client struct {
	dial func(addr string, tlsConfig *tls.Config) (session, error)
}

// NewClient creates a new SMTP client
func NewClient() *Client {
	return &Client{
		dial: func(addr string, tlsConfig *tls.Config) (session, error) {
			return smtp.DialStartTLS(addr, tlsConfig)
		},
	}
}

// Send transmits msg over a fresh STARTTLS session. The session is closed
// on every exit path. One attempt only; the first failure is returned,
// classified by the step that failed.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("%w: no recipients", ErrInvalidRecipient)
	}

	// Compose before dialing so a bad message never opens a connection.
	raw, err := compose(msg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	addr := net.JoinHostPort(msg.Server, strconv.Itoa(msg.Port))
	conn, err := c.dial(addr, &tls.Config{ServerName: msg.Server})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConnection, addr, err)
	}
	defer conn.Close()

	auth := sasl.NewPlainClient("", msg.Username, msg.Password)
	if err := conn.Auth(auth); err != nil {
		return fmt.Errorf("%w: %v", ErrAuth, err)
	}

	if err := conn.SendMail(msg.Username, msg.To, bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	if err := conn.Quit(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	return nil
}

// ParseRecipients splits a comma-separated recipient string and validates
// each address. Returns ErrInvalidRecipient on the first bad address.
func ParseRecipients(s string) ([]string, error) {
	var out []string
	for _, part := range strings.Split(s, ",") {
		addr := strings.TrimSpace(part)
		if addr == "" {
			continue
		}
		if _, err := netmail.ParseAddress(addr); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidRecipient, addr, err)
		}
		out = append(out, addr)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: recipient list is empty", ErrInvalidRecipient)
	}
	return out, nil
}
