// Package cmd implements the CLI application to inspect a broker tradebook.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ngarg/tradebook"
	"github.com/sirupsen/logrus"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	tradebooksFlag = flag.String("tradebooks", "tradebook.csv", "Comma-separated tradebook sources: csv or json files, or http(s) URLs")
	aliasesFlag    = flag.String("aliases", "", "Path to a JSON file mapping instrument identifiers to their canonical form")
	hideFlag       = flag.String("hide", "", "Comma-separated instruments to hide while fully exited")
	currencyFlag   = flag.String("currency", tradebook.DefaultCurrency, "Trading currency of tradebook prices")
	recordsFlag    = flag.String("records-path", "", "jsonpath expression selecting trade records in JSON tradebooks")
	verboseFlag    = flag.Bool("v", false, "Enable debug logging")
)

var logger *logrus.Logger

// Logger returns the application logger, debug-level when -v is set.
func Logger() *logrus.Logger {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		if *verboseFlag {
			logger.SetLevel(logrus.DebugLevel)
		}
	}
	return logger
}

// LoadLedger reads every configured tradebook source and normalizes the
// records into a single ledger.
func LoadLedger() (*tradebook.Ledger, error) {
	sources := splitList(*tradebooksFlag)
	if len(sources) == 0 {
		return nil, fmt.Errorf("no tradebook sources given, see -tradebooks")
	}

	var batches [][]tradebook.RawTradeRecord
	for _, source := range sources {
		records, err := loadRecords(source)
		if err != nil {
			return nil, fmt.Errorf("cannot load tradebook %q: %w", source, err)
		}
		Logger().WithFields(logrus.Fields{"source": source, "records": len(records)}).Debug("loaded tradebook")
		batches = append(batches, records)
	}

	aliases, err := loadAliases(*aliasesFlag)
	if err != nil {
		return nil, err
	}

	ledger, err := tradebook.Normalize(batches, tradebook.NormalizeOptions{
		Aliases:  aliases,
		Hide:     splitList(*hideFlag),
		Currency: *currencyFlag,
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

// loadRecords reads one tradebook source, local file or URL, in csv or json form.
func loadRecords(source string) ([]tradebook.RawTradeRecord, error) {
	var content []byte
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		content, err = tradebook.Wget(tradebook.DailyClient(), source)
	} else {
		content, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	if isJSON(source, content) {
		return tradebook.ImportJSON(strings.NewReader(string(content)), *recordsFlag)
	}
	return tradebook.ImportCSV(strings.NewReader(string(content)))
}

func isJSON(source string, content []byte) bool {
	if strings.HasSuffix(strings.ToLower(source), ".json") {
		return true
	}
	trimmed := strings.TrimSpace(string(content))
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}

// loadAliases reads the alias table from a JSON object file.
func loadAliases(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read aliases file: %w", err)
	}
	aliases, err := tradebook.ParseAliases(content)
	if err != nil {
		return nil, fmt.Errorf("cannot parse aliases file %q: %w", path, err)
	}
	return aliases, nil
}

func splitList(s string) []string {
	var list []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
