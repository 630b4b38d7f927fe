package main

import (
	"flag"
	"strconv"

	"github.com/HuXin0817/dots-and-boxes-engine/client/internal/config"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/model"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	configFile    = flag.String("f", "", "the config file")
	BoardSizeConf = flag.String("BoardSize", "", "BoardSize")
	ColorConf     = flag.String("Color", "", "Color")
	ProgressConf  = flag.String("Progress", "", "Progress")

	Conf     config.Config
	Color    model.Config
	Progress model.Config
)

func initConfig() {
	flag.Parse()

	var err error
	Conf, err = config.Load(*configFile)
	if err != nil {
		logx.Must(err)
	}

	if *BoardSizeConf != "" {
		n, err := strconv.Atoi(*BoardSizeConf)
		if err != nil {
			logx.Must(err)
		}
		Conf.BoardSize = config.ClampBoardSize(n)
	}

	Color = model.NewConfig(Conf.Color, model.On)
	if *ColorConf != "" {
		Color = model.NewConfig(*ColorConf, Color)
	}

	Progress = model.NewConfig(Conf.Progress, model.On)
	if *ProgressConf != "" {
		Progress = model.NewConfig(*ProgressConf, Progress)
	}
}
