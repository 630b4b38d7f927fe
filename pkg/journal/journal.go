package journal

import (
	"context"
	"time"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	defaultPushInterval = time.Second
	defaultPushTimeout  = 5 * time.Second
)

// Sink receives journal messages in the order the engine produced them.
type Sink interface {
	Push(ctx context.Context, messages ...message.EventMessage) error
}

// Journal records engine events. It never feeds anything back into a game.
type Journal struct {
	gameUid      message.GameUid
	pushers      []*pusher.Pusher[message.EventMessage]
	pushInterval time.Duration
	pushTimeout  time.Duration
}

type Option func(*Journal)

func WithPushInterval(interval time.Duration) Option {
	return func(j *Journal) {
		if interval > 0 {
			j.pushInterval = interval
		}
	}
}

func WithPushTimeout(timeout time.Duration) Option {
	return func(j *Journal) {
		if timeout > 0 {
			j.pushTimeout = timeout
		}
	}
}

// New builds a journal with one pusher per sink, so a failing sink only
// delays its own messages.
func New(sinks []Sink, options ...Option) *Journal {
	j := &Journal{
		gameUid:      message.NewGameUid(),
		pushInterval: defaultPushInterval,
		pushTimeout:  defaultPushTimeout,
	}

	for _, option := range options {
		option(j)
	}

	for _, sink := range sinks {
		j.pushers = append(j.pushers, pusher.NewPusher(
			pusher.WithPushInterval[message.EventMessage](j.pushInterval),
			pusher.WithPushLogic(j.pushLogic(sink)),
			pusher.WithErrorHandler[message.EventMessage](func(err error) {
				logx.Errorf("journal push: %v", err)
			}),
		))
	}

	return j
}

func (j *Journal) pushLogic(sink Sink) func(...message.EventMessage) error {
	return func(messages ...message.EventMessage) error {
		ctx, cancel := context.WithTimeout(context.Background(), j.pushTimeout)
		defer cancel()
		return sink.Push(ctx, messages...)
	}
}

// GameUid identifies the game currently being recorded.
func (j *Journal) GameUid() message.GameUid { return j.gameUid }

// Observer plugs the journal into a game. Every GameStarted event opens a
// new game uid.
func (j *Journal) Observer() chess.Observer {
	first := true
	return func(e chess.Event) {
		if e.Kind == chess.GameStarted {
			if !first {
				j.gameUid = message.NewGameUid()
			}
			first = false
		}

		m := message.NewEventMessage(j.gameUid, e)
		for _, p := range j.pushers {
			p.AddMessages(m)
		}
	}
}

func (j *Journal) Start() {
	for _, p := range j.pushers {
		p.Start()
	}
}

// Close flushes buffered messages and stops every pusher.
func (j *Journal) Close() {
	for _, p := range j.pushers {
		p.Stop()
	}
}
