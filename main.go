package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/example/vocabtrainer/internal/config"
	"github.com/example/vocabtrainer/internal/database"
	"github.com/example/vocabtrainer/internal/excel"
	"github.com/example/vocabtrainer/internal/quiz"
	"github.com/example/vocabtrainer/internal/review"
	"github.com/example/vocabtrainer/internal/scheduler"
	"github.com/example/vocabtrainer/internal/scoring"
	"github.com/example/vocabtrainer/internal/session"
	"github.com/example/vocabtrainer/internal/storage"
	"github.com/example/vocabtrainer/internal/ui"
	"github.com/example/vocabtrainer/internal/vocab"
	"github.com/example/vocabtrainer/pkg/models"
)

func main() {
	fileFlag := flag.String("file", "", "Vocabulary file to drill (defaults to stdin)")
	importFlag := flag.String("import", "", "Import entries from an .xlsx or .csv file instead")
	sheetFlag := flag.String("sheet", "Sheet1", "Sheet name for -import")
	weakFlag := flag.Int("weak", 0, "Drill only the N weakest terms")
	statsFlag := flag.Bool("stats", false, "Print the score table and exit")
	remindFlag := flag.Bool("remind", false, "Run the weak-term reminder daemon")
	policyFlag := flag.String("policy", "", "Scoring policy override (counters or signed)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *policyFlag != "" {
		policy, err := scoring.ByName(*policyFlag)
		if err != nil {
			log.Fatalf("Invalid -policy: %v", err)
		}
		cfg.Policy = policy
	}

	switch {
	case *statsFlag:
		printStats(cfg)
	case *remindFlag:
		runReminder(cfg)
	default:
		runDrill(cfg, *fileFlag, *importFlag, *sheetFlag, *weakFlag)
	}
}

// loadEntries resolves the entry source: spreadsheet import, a file in the
// drill format, or stdin.
func loadEntries(importPath, filePath, sheet string) ([]*models.Entry, error) {
	if importPath != "" {
		importCfg := excel.DefaultImportConfig()
		importCfg.FilePath = importPath
		importCfg.SheetName = sheet
		entries, result, err := excel.ImportEntries(importCfg)
		if err != nil {
			return nil, err
		}
		for _, msg := range result.Errors {
			log.Printf("Import warning: %s", msg)
		}
		return entries, nil
	}
	if filePath != "" {
		return vocab.LoadEntriesFromFile(filePath)
	}
	return vocab.LoadEntries(os.Stdin)
}

func runDrill(cfg *config.Config, filePath, importPath, sheet string, weak int) {
	entries, err := loadEntries(importPath, filePath, sheet)
	if err != nil {
		log.Fatalf("Failed to load entries: %v", err)
	}
	if len(entries) == 0 {
		log.Fatal("No entries to drill")
	}

	scores, err := storage.LoadScores(cfg.ScorePath, cfg.Policy)
	if err != nil {
		log.Fatalf("Failed to load scores: %v", err)
	}

	if weak > 0 {
		entries = review.Prioritize(entries, scores, weak)
	}

	st := quiz.NewState(entries, scores, cfg.Policy)

	termUI, err := ui.New()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	defer termUI.Close()

	rec := session.NewRecorder(termUI)
	runErr := session.Run(rec, st)

	// The score flush happens even when the session loop aborted.
	if err := storage.SaveScores(cfg.ScorePath, st.Scores(), cfg.Policy); err != nil {
		log.Printf("Failed to save scores: %v", err)
	}
	recordHistory(cfg, rec, st)

	if runErr != nil {
		log.Fatalf("Session aborted: %v", runErr)
	}
}

// recordHistory persists the session outcome when a history database is
// configured. History failures are reported but never fatal.
func recordHistory(cfg *config.Config, rec *session.Recorder, st *quiz.State) {
	if cfg.HistoryDB == "" {
		return
	}
	db, err := database.Connect(cfg.HistoryDB)
	if err != nil {
		log.Printf("Failed to connect to history database: %v", err)
		return
	}
	defer db.Close()

	repo, err := database.NewHistoryRepository(db)
	if err != nil {
		log.Printf("Failed to initialize history schema: %v", err)
		return
	}
	if err := repo.RecordSession(rec.Result(st.Total()), rec.TermResults()); err != nil {
		log.Printf("Failed to record session history: %v", err)
	}
}

func printStats(cfg *config.Config) {
	scores, err := storage.LoadScores(cfg.ScorePath, cfg.Policy)
	if err != nil {
		log.Fatalf("Failed to load scores: %v", err)
	}
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	terms := make([]string, 0, len(scores))
	for term := range scores {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		si, sj := scores[terms[i]], scores[terms[j]]
		if si.CorrectRate() != sj.CorrectRate() {
			return si.CorrectRate() < sj.CorrectRate()
		}
		return terms[i] < terms[j]
	})

	if cfg.Policy.Name() == "signed" {
		for _, term := range terms {
			fmt.Printf("%-24s %6d\n", term, scores[term].Value)
		}
		return
	}
	fmt.Printf("%-24s %6s %8s\n", "term", "tries", "correct")
	for _, term := range terms {
		score := scores[term]
		fmt.Printf("%-24s %6d %7.0f%%\n", term, score.TotalTries(), score.CorrectRate()*100)
	}
}

func runReminder(cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loader := func() (models.Scores, error) {
		return storage.LoadScores(cfg.ScorePath, cfg.Policy)
	}
	s := scheduler.New(scheduler.LogNotifier{}, loader, cfg.WeakThreshold,
		cfg.RemindStartHour, cfg.RemindEndHour)
	s.Start(cfg.RemindEvery)
	defer s.Stop()

	log.Printf("Reminder daemon started (every %v). Press Ctrl+C to stop.", cfg.RemindEvery)
	<-ctx.Done()
	log.Println("Reminder daemon stopped")
}
