package notifier

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/kotche/notes/internal/metrics"
	"github.com/kotche/notes/internal/model"
	"github.com/kotche/notes/internal/service/kafka"
	"github.com/kotche/notes/internal/service/notes"
)

const (
	checkInterval = time.Minute
)

// Notifier publishes reminder events for notes whose timestamp falls due,
// then deletes reminded notes as the events come back off the topic.
type Notifier struct {
	notes  notes.Service
	broker kafka.MessageBroker
}

func New(notes notes.Service, broker kafka.MessageBroker) *Notifier {
	return &Notifier{
		notes:  notes,
		broker: broker,
	}
}

func (n *Notifier) Start() {
	log.Println("Notifier started...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := n.publishDueReminders(ctx); err != nil {
		log.Printf("error publishing reminders: %v", err)
	}

	go func() {
		if err := n.runDeleteRemindedNotes(ctx); err != nil {
			log.Printf("error deleting reminded notes: %v", err)
		}
	}()

	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()

	for range ticker.C {
		if err := n.publishDueReminders(ctx); err != nil {
			log.Printf("error publishing reminders: %v", err)
		}
	}
}

// publishDueReminders scans the next check window and publishes one event
// per due note, keyed by note id.
func (n *Notifier) publishDueReminders(ctx context.Context) error {
	start := time.Now().Truncate(checkInterval)
	end := start.Add(checkInterval)

	dueNotes, err := n.notes.ReceiveReminders(ctx, start, end)
	if err != nil {
		return err
	}

	sent := 0
	for _, note := range dueNotes {
		if err = n.broker.SendMessage(ctx,
			[]byte(fmt.Sprintf("%d", note.ID)),
			[]byte(note.Title),
		); err != nil {
			log.Printf("failed to send reminder for note '%d' to kafka: %v", note.ID, err)
			continue
		}

		sent++
		log.Printf("reminder for note '%d' sent to kafka", note.ID)
	}

	if sent > 0 {
		metrics.SendReminders(sent)
	}

	return nil
}

// runDeleteRemindedNotes consumes the reminders topic and removes each
// reminded note, so a reminder fires at most once.
func (n *Notifier) runDeleteRemindedNotes(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		key, _, err := n.broker.ReadMessage(ctx)
		if err != nil {
			log.Printf("error reading message from kafka: %v", err)
			continue
		}

		noteID, err := strconv.ParseInt(string(key), 10, 64)
		if err != nil {
			log.Printf("error converting note id `%s` to int: %v", key, err)
			continue
		}

		if _, err = n.notes.Delete(ctx, model.NoteID(noteID)); err != nil {
			log.Printf("error deleting note %d: %v", noteID, err)
			continue
		}

		log.Printf("note '%d' deleted after reminder", noteID)
	}
}
