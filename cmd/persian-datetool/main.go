package main

import (
	"fmt"
	"os"

	// Embed zone data so Asia/Tehran resolves on minimal systems.
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"github.com/username/persian-datetool/internal/config"
	"github.com/username/persian-datetool/pkg/clock"
	"github.com/username/persian-datetool/pkg/persiandate"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
	sysClock   clock.Clock = clock.Real{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "persian-datetool",
		Short: "Persian (Jalali) calendar date tool",
		Long:  "Convert dates between the Gregorian and Jalali calendars and render Persian date strings, relative phrases and holidays",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(nowCmd())
	rootCmd.AddCommand(agoCmd())
	rootCmd.AddCommand(leapCmd())
	rootCmd.AddCommand(holidaysCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func nowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current Jalali date and time",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			loc, err := cfg.Location()
			if err != nil {
				return err
			}

			now := sysClock.Now().In(loc)
			d, err := persiandate.New(persiandate.Options{
				Source: persiandate.SourceTime,
				Time:   now,
				Layout: cfg.Output.GetLayout(),
			})
			if err != nil {
				return err
			}

			logger.Debug("Rendering current instant",
				zap.Time("now", now),
				zap.String("timezone", loc.String()))

			fmt.Println(d)
			return nil
		},
	}
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
