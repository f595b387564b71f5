// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Department of Linguistics,
// Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"github.com/czcorpus/caesarus/apiserver"
	"github.com/czcorpus/caesarus/cnf"
	"github.com/czcorpus/caesarus/lexicon"
	"github.com/czcorpus/caesarus/scoring"
)

const (
	actionServer  = "server"
	actionCrack   = "crack"
	actionREPL    = "repl"
	actionTrain   = "train"
	actionVersion = "version"
	actionHelp    = "help"

	exitErrorGeneralFailure = iota
	exitErrorTrainFailed
	exitErrorREPLReading
)

var (
	version   string
	buildDate string
	gitCommit string
)

func topLevelUsage() {
	fmt.Fprintf(os.Stderr, "CAESARUS - a Caesar cipher cracking service\n")
	fmt.Fprintf(os.Stderr, "-----------------------------\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "\t%s\t\tshow version info\n", actionVersion)
	fmt.Fprintf(os.Stderr, "\t%s\t\trun the HTTP API server\n", actionServer)
	fmt.Fprintf(os.Stderr, "\t%s\t\tcrack a single ciphertext from the command line\n", actionCrack)
	fmt.Fprintf(os.Stderr, "\t%s\t\tinteractive cracking REPL\n", actionREPL)
	fmt.Fprintf(os.Stderr, "\t%s\t\tbuild an n-gram model from a corpus file\n", actionTrain)
	fmt.Fprintf(os.Stderr, "\nUse `caesarus help ACTION` for information about a specific action\n\n")
}

func setup(confPath string) *cnf.Conf {
	conf := cnf.LoadConfig(confPath)
	if conf.Logging.Level == "" {
		conf.Logging.Level = "info"
	}
	logging.SetupLogging(conf.Logging)
	cnf.ValidateAndDefaults(conf)
	return conf
}

// newEngine creates the scoring engine with either the built-in tuned
// parameters or the override file from the configuration.
func newEngine(conf *cnf.Conf) *scoring.Engine {
	params := scoring.DefaultParams()
	if conf.ScoringParamsPath != "" {
		var err error
		params, err = scoring.LoadParamsFromFile(conf.ScoringParamsPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", conf.ScoringParamsPath).
				Msg("failed to load scoring params")
		}
		log.Info().Str("path", conf.ScoringParamsPath).Msg("loaded scoring params override")
	}
	return scoring.NewEngine(params)
}

func cleanVersionInfo(v string) string {
	return strings.TrimLeft(strings.Trim(v, "'"), "v")
}

func runActionServer(conf *cnf.Conf, ver apiserver.VersionInfo) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	loader := lexicon.NewLoader(conf.DataDir)
	apiserver.Run(ctx, conf, loader, newEngine(conf), ver)
}

func runActionVersion(ver apiserver.VersionInfo) {
	fmt.Fprintln(os.Stderr, "Caesarus version: ", ver)
}

func main() {
	version := apiserver.VersionInfo{
		Version:   cleanVersionInfo(version),
		BuildDate: cleanVersionInfo(buildDate),
		GitCommit: cleanVersionInfo(gitCommit),
	}

	cmdServer := flag.NewFlagSet(actionServer, flag.ExitOnError)
	cmdServer.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Usage:\t%s %s [options] config.json\n",
			filepath.Base(os.Args[0]), actionServer)
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		cmdServer.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nRun the Caesarus HTTP API server\n")
	}

	cmdCrack := flag.NewFlagSet(actionCrack, flag.ExitOnError)
	crackLang := cmdCrack.String("lang", "en", "language of the expected plaintext (en|fr)")
	crackTop := cmdCrack.Int("top", 5, "how many top candidates to print")
	cmdCrack.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Usage:\t%s %s [options] config.json \"ciphertext\"\n",
			filepath.Base(os.Args[0]), actionCrack)
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		cmdCrack.PrintDefaults()
	}

	cmdREPL := flag.NewFlagSet(actionREPL, flag.ExitOnError)
	cmdREPL.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Usage:\t%s %s config.json\n",
			filepath.Base(os.Args[0]), actionREPL)
		cmdREPL.PrintDefaults()
	}

	cmdTrain := flag.NewFlagSet(actionTrain, flag.ExitOnError)
	trainLang := cmdTrain.String("lang", "en", "language the corpus is written in (en|fr)")
	cmdTrain.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Usage:\t%s %s [options] config.json corpus.txt\n",
			filepath.Base(os.Args[0]), actionTrain)
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		cmdTrain.PrintDefaults()
	}

	cmdVersion := flag.NewFlagSet(actionVersion, flag.ExitOnError)
	cmdVersion.Usage = func() {
		cmdVersion.PrintDefaults()
	}

	cmdHelp := flag.NewFlagSet(actionHelp, flag.ExitOnError)
	cmdHelp.Usage = func() {
		cmdHelp.PrintDefaults()
	}

	action := actionHelp
	if len(os.Args) > 1 {
		action = os.Args[1]
	}

	switch action {
	case actionHelp:
		var subj string
		if len(os.Args) > 2 {
			cmdHelp.Parse(os.Args[2:])
			subj = cmdHelp.Arg(0)
		}
		if subj == "" {
			topLevelUsage()
			return
		}
		switch subj {
		case actionServer:
			cmdServer.Usage()
		case actionCrack:
			cmdCrack.Usage()
		case actionREPL:
			cmdREPL.Usage()
		case actionTrain:
			cmdTrain.Usage()
		}
	case actionVersion:
		cmdVersion.Parse(os.Args[2:])
		runActionVersion(version)
	case actionServer:
		cmdServer.Parse(os.Args[2:])
		conf := setup(cmdServer.Arg(0))
		runActionServer(conf, version)
	case actionCrack:
		cmdCrack.Parse(os.Args[2:])
		conf := setup(cmdCrack.Arg(0))
		runActionCrack(conf, cmdCrack.Arg(1), *crackLang, *crackTop)
	case actionREPL:
		cmdREPL.Parse(os.Args[2:])
		conf := setup(cmdREPL.Arg(0))
		runActionREPL(conf)
	case actionTrain:
		cmdTrain.Parse(os.Args[2:])
		conf := setup(cmdTrain.Arg(0))
		runActionTrain(conf, cmdTrain.Arg(1), *trainLang)
	default:
		fmt.Fprintf(os.Stderr, "Unknown action, please use 'help' to get more information")
	}
}
