package aggregator

import (
	"time"

	"github.com/fleettrack/fleettrack/pkg/aggregator/calculator"
	"github.com/fleettrack/fleettrack/pkg/database"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "aggregator",
		Usage: "Batch aggregation of raw vehicle telemetry",
		Subcommands: []*cli.Command{
			{
				Name:  "daily",
				Usage: "compute daily summaries for every active vehicle",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "date",
						Usage:    "Target date (YYYY-MM-DD). Defaults to yesterday",
						Required: false,
					},
				},
				Action: func(c *cli.Context) error {
					targetDate, err := parseTargetDate(c.String("date"))
					if err != nil {
						return err
					}

					if err := database.Connect(); err != nil {
						return err
					}

					dailyAggregator := DailyAggregator{
						SummaryDate: targetDate,
						Thresholds:  calculator.DefaultThresholds,
					}

					return dailyAggregator.Perform()
				},
			},
		},
	}
}

func parseTargetDate(value string) (time.Time, error) {
	if value == "" {
		yesterday := time.Now().AddDate(0, 0, -1)

		return time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.Local), nil
	}

	return time.ParseInLocation("2006-01-02", value, time.Local)
}
