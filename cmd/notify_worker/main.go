package main

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/akmalhzn/portfolio-api/config"
	"github.com/akmalhzn/portfolio-api/pkg/mailer"
)

// notify_worker drains the contact notification queue and emails each new
// message to the portfolio owner via Mailgun. Run it next to the API when
// NOTIFY_ENABLED=true.
func main() {
	cfg := config.Load()
	if !cfg.NotifyEnabled {
		log.Println("NOTIFY_ENABLED=false; notify worker disabled (no emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQNotifyQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" || cfg.ContactEmail == "" {
		log.Fatal("Mailgun not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQNotifyQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQNotifyQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var job mailer.ContactNotification
			if err := json.Unmarshal(msg.Body, &job); err != nil {
				log.Printf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}

			subject := fmt.Sprintf("New contact message: %s", job.Subject)
			text := fmt.Sprintf("From: %s <%s>\nSent: %s\n\n%s", job.Name, job.Email, job.SentAt, job.Message)
			htmlBody := fmt.Sprintf(
				"<p><strong>From:</strong> %s &lt;%s&gt;<br><strong>Sent:</strong> %s</p><p>%s</p>",
				html.EscapeString(job.Name),
				html.EscapeString(job.Email),
				html.EscapeString(job.SentAt),
				html.EscapeString(job.Message),
			)

			c, cancel := context.WithTimeout(ctx, 15*time.Second)
			if err := mg.Send(c, cfg.ContactEmail, subject, text, htmlBody); err != nil {
				cancel()
				log.Printf("send failed for message %s: %v", job.MessageID, err)
				_ = msg.Nack(false, true)
				continue
			}
			cancel()
			_ = msg.Ack(false)
		}
		close(done)
	}()

	log.Printf("notify worker consuming %q", cfg.RabbitMQNotifyQueue)
	select {
	case <-stop:
		log.Println("shutting down notify worker")
		_ = ch.Close()
		<-done
	case <-done:
		log.Println("channel closed; notify worker exiting")
	}
}
