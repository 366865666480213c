package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/karthikv/spam-detector/internal/adapters/store"
	"github.com/karthikv/spam-detector/internal/config"
	"github.com/karthikv/spam-detector/internal/core"
	"github.com/karthikv/spam-detector/internal/di"
	"github.com/karthikv/spam-detector/internal/maintenance"
	"github.com/karthikv/spam-detector/internal/report"
	"github.com/karthikv/spam-detector/internal/sysinfo"
)

// demoMessages is processed when no input file is given
var demoMessages = []string{
	"call you later",
	"Hey, are we still on for lunch today?",
	"Urgent! Your account has been compromised. Reply now to secure it.",
	"Hi, just checking in to see how you're doing.",
	"I HAVE A DATE ON SUNDAY WITH WILL!!",
	"WINNER!! As a valued network customer you have been selected to receive a £900 prize reward!",
}

func main() {
	flags := di.ParseDetectorFlags()

	container, err := di.BuildDetectorContainer(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	if err := container.Invoke(run); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main pipeline function that gets all dependencies injected
func run(
	logger *zap.Logger,
	cfg *config.Config,
	flags *di.DetectorFlags,
	service *core.DetectionService,
	fileStore *store.FileStore,
	maintainer *maintenance.Maintainer,
	reporter *report.ConsoleReporter,
) error {
	defer logger.Sync()
	ctx := context.Background()

	reporter.PrintBanner(sysinfo.Collect())

	fmt.Println("\nSetting up environment...")
	if err := fileStore.SetupEnvironment(); err != nil {
		return err
	}

	messages, err := loadMessages(flags.InputFile)
	if err != nil {
		return err
	}

	fmt.Println("\nProcessing messages...")
	detections := make([]*core.Detection, 0, len(messages))
	for _, message := range messages {
		detection, err := service.ProcessMessage(ctx, message)
		if err != nil {
			return err
		}
		reporter.PrintDetection(detection)
		detections = append(detections, detection)
	}

	mcfg := cfg.GetMaintenance()
	archive, err := maintainer.BackupData(fileStore.BaseDir(), mcfg.BackupDir)
	if err != nil {
		return err
	}
	fmt.Printf("\nBackup created: %s\n", archive)

	_, skipped, err := maintainer.CleanupOldFiles(fileStore.OutputDir(), mcfg.MaxAgeDays)
	if err != nil {
		return err
	}
	if len(skipped) > 0 {
		logger.Warn("Cleanup skipped some paths", zap.Strings("paths", skipped))
	}

	reporter.PrintSummary(detections)
	return nil
}

// loadMessages reads one message per line from path, or returns the
// built-in demo set when path is empty. Blank lines are skipped.
func loadMessages(path string) ([]string, error) {
	if path == "" {
		return demoMessages, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	var messages []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			messages = append(messages, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return messages, nil
}
