package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"sortbench/experiment"
)

// configEnv names an optional TOML file that overrides the default experiment.
const configEnv = "SORTBENCH_CONFIG"

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := experiment.DefaultConfig()
	if path := os.Getenv(configEnv); path != "" {
		var err error
		if cfg, err = experiment.LoadConfigFile(path); err != nil {
			log.Fatalf("Unable to load config: %v", err)
		}
		log.WithField("path", path).Info("loaded config file")
	}

	runner, err := experiment.NewRunner(cfg, experiment.WithLogger(log))
	if err != nil {
		log.Fatalf("Invalid experiment config: %v", err)
	}

	fmt.Println("Sorting algorithm benchmark starting...")
	results, err := runner.Run()
	if err != nil {
		log.Fatalf("Experiment aborted: %v", err)
	}

	// a failed write loses the results but is not fatal
	if err := experiment.SaveCSV(cfg.OutputPath, results); err != nil {
		log.WithError(err).Error("Error writing to CSV file")
	} else {
		fmt.Println("Results saved!")
	}

	if cfg.Summary {
		experiment.WriteSummary(os.Stdout, experiment.Summarize(results))
	}
}
