package mailer_test

import (
	"context"
	"net"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nest/config"
	"nest/infras/mailer"
	"nest/infras/otel/mocks"
)

func newMailer(host, port string) mailer.Mailer {
	cfg := &config.Config{}
	cfg.External.SMTP.Host = host
	cfg.External.SMTP.Port = port
	cfg.External.SMTP.Sender = "noreply@example.com"

	return mailer.New(cfg, mocks.NewOtel())
}

// mockSMTPServer speaks just enough of the protocol for a single plaintext
// delivery. It advertises no extensions, so the client skips STARTTLS and AUTH.
func mockSMTPServer(t *testing.T, ln net.Listener, wg *sync.WaitGroup, received *strings.Builder) {
	t.Helper()

	defer wg.Done()

	conn, err := ln.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	tc := textproto.NewConn(conn)
	_ = tc.PrintfLine("220 127.0.0.1 ready")

	inData := false

	for {
		line, err := tc.ReadLine()
		if err != nil {
			return
		}

		if inData {
			if line == "." {
				inData = false
				_ = tc.PrintfLine("250 OK")

				continue
			}

			received.WriteString(line + "\r\n")

			continue
		}

		switch {
		case strings.HasPrefix(line, "EHLO"), strings.HasPrefix(line, "HELO"):
			_ = tc.PrintfLine("250 127.0.0.1")
		case strings.HasPrefix(line, "MAIL FROM"):
			_ = tc.PrintfLine("250 OK")
		case strings.HasPrefix(line, "RCPT TO"):
			_ = tc.PrintfLine("250 OK")
		case line == "DATA":
			inData = true

			_ = tc.PrintfLine("354 Send data")
		case line == "QUIT":
			_ = tc.PrintfLine("221 Bye")

			return
		default:
			_ = tc.PrintfLine("250 OK")
		}
	}
}

func TestMailerSend(t *testing.T) {
	t.Run("delivers over a plaintext session", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		assert.NoError(t, err)

		defer ln.Close()

		var (
			wg       sync.WaitGroup
			received strings.Builder
		)

		wg.Add(1)

		go mockSMTPServer(t, ln, &wg, &received)

		_, port, err := net.SplitHostPort(ln.Addr().String())
		assert.NoError(t, err)

		m := newMailer("127.0.0.1", port)

		err = m.Send(context.Background(), "jane.roe@example.com", "Booking Confirmed", "<p>See you soon</p>")
		assert.NoError(t, err)

		wg.Wait()

		assert.Contains(t, received.String(), "Subject: Booking Confirmed")
		assert.Contains(t, received.String(), "To: jane.roe@example.com")
		assert.Contains(t, received.String(), "<p>See you soon</p>")
	})

	t.Run("cancelled context aborts before dialing", func(t *testing.T) {
		m := newMailer("127.0.0.1", "2525")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := m.Send(ctx, "jane.roe@example.com", "Booking Confirmed", "<p>See you soon</p>")
		assert.Error(t, err)
	})

	t.Run("expired deadline bounds a hung server", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		assert.NoError(t, err)

		defer ln.Close()

		// Accept the connection but never send the greeting.
		go func() {
			conn, acceptErr := ln.Accept()
			if acceptErr != nil {
				return
			}

			time.Sleep(2 * time.Second)
			conn.Close()
		}()

		_, port, err := net.SplitHostPort(ln.Addr().String())
		assert.NoError(t, err)

		m := newMailer("127.0.0.1", port)

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		start := time.Now()
		err = m.Send(ctx, "jane.roe@example.com", "Booking Confirmed", "<p>See you soon</p>")

		assert.Error(t, err)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("skips silently when SMTP is not configured", func(t *testing.T) {
		m := newMailer("", "")

		err := m.Send(context.Background(), "jane.roe@example.com", "Booking Confirmed", "<p>See you soon</p>")
		assert.NoError(t, err)
	})

	t.Run("rejects an invalid recipient", func(t *testing.T) {
		m := newMailer("127.0.0.1", "2525")

		err := m.Send(context.Background(), "not-an-address", "Booking Confirmed", "<p>See you soon</p>")
		assert.Error(t, err)
	})
}
