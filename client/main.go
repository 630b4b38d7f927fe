package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/journal"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/pprof"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

func main() {
	initConfig()
	logx.MustSetup(Conf.Log)
	defer logx.Close()

	pprof.Start(Conf.Pprof)

	renderer := NewRenderer(os.Stdout, Color, Progress)
	game := chess.NewGame(renderer.Observer())

	j := newJournal()
	if j != nil {
		game.Observe(j.Observer())
		j.Start()
		go closeOnSignal(j)
	}

	session := NewSession(game, Conf.BoardSize, Conf.Identities(), os.Stdout)
	if err := session.Start(); err != nil {
		logx.Must(err)
	}
	fmt.Println(usage)

	if err := session.Run(os.Stdin); err != nil {
		logx.Error(err)
	}

	if j != nil {
		j.Close()
	}
}

func newJournal() *journal.Journal {
	var sinks []journal.Sink

	if url := Conf.Journal.Mongo.Url; url != "" {
		sink, err := journal.NewMongoSink(url, Conf.Journal.Mongo.DataBaseName)
		if err != nil {
			logx.Errorf("journal mongo sink disabled: %v", err)
		} else {
			sinks = append(sinks, sink)
		}
	}

	if host := Conf.Journal.Redis.Host; host != "" {
		rds, err := redis.NewRedis(redis.RedisConf{
			Host: host,
			Type: redis.NodeType,
			Pass: Conf.Journal.Redis.Pass,
		})
		if err != nil {
			logx.Errorf("journal redis sink disabled: %v", err)
		} else {
			sinks = append(sinks, journal.NewRedisSink(rds, 0))
		}
	}

	if len(sinks) == 0 {
		return nil
	}
	return journal.New(sinks, journal.WithPushInterval(Conf.Journal.PushInterval))
}

func closeOnSignal(j *journal.Journal) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	j.Close()
	logx.Close()
	os.Exit(0)
}
