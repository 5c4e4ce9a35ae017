package application

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleHand = `Poker Hand #RC3877234041: Hold'em No Limit ($0.01/$0.02) - 2025/09/11 05:33:30
Table 'RushAndCash17757914' 6-max Seat #1 is the button
Seat 1: 9e47efb ($2.05 in chips)
Seat 2: Hero ($1.13 in chips)
Seat 3: e329e9c8 ($1.99 in chips)
Seat 4: 6051b484 ($2.87 in chips)
Seat 5: 7a0a5e1a ($2.06 in chips)
Seat 6: 6cef3573 ($1.36 in chips)
Hero: posts small blind $0.01
e329e9c8: posts big blind $0.02
*** HOLE CARDS ***
Dealt to Hero [7s 6c]
6051b484: folds
7a0a5e1a: folds
6cef3573: folds
9e47efb: folds
Hero: raises $0.04 to $0.06
e329e9c8: folds
Uncalled bet ($0.04) returned to Hero
*** SUMMARY ***
Total pot $0.04 | Rake $0
Seat 2: Hero (small blind) collected ($0.04)
`

const villainHand = `Poker Hand #RC900: Hold'em No Limit ($0.01/$0.02) - 2025/09/11 06:00:00
Table 'RushAndCash17757914' 6-max Seat #2 is the button
Seat 1: aaaa1111 ($2.00 in chips)
Seat 2: bbbb2222 ($2.00 in chips)
aaaa1111: posts small blind $0.01
bbbb2222: posts big blind $0.02
*** HOLE CARDS ***
aaaa1111: folds
*** SUMMARY ***
Total pot $0.02 | Rake $0
Seat 2: bbbb2222 collected ($0.02)
`

func writeHistory(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func TestImportAll(t *testing.T) {
	dir := t.TempDir()
	writeHistory(t, dir, "a.txt", sampleHand)
	writeHistory(t, dir, "b.txt", villainHand)
	writeHistory(t, dir, "notes.log", "ignored")

	svc := NewService(DirectoryLocator(dir))
	progressCalls := 0
	total, err := svc.ImportAll(context.Background(), func(p ImportProgress) { progressCalls++ })
	if err != nil {
		t.Fatalf("ImportAll: %v", err)
	}
	if total != 1 {
		t.Errorf("expected 1 hero hand, got %d", total)
	}
	if progressCalls != 2 {
		t.Errorf("expected progress for 2 txt files, got %d", progressCalls)
	}

	r := svc.Report()
	if r.TotalHands != 1 {
		t.Errorf("expected report over 1 hand, got %d", r.TotalHands)
	}
	if r.TotalProfit != 2 {
		t.Errorf("expected total profit 2 cents, got %d", r.TotalProfit)
	}
}

func TestImportAllNoFiles(t *testing.T) {
	svc := NewService(DirectoryLocator(t.TempDir()))
	_, err := svc.ImportAll(context.Background(), nil)
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput, got %v", err)
	}
}

func TestImportAllNoHeroHands(t *testing.T) {
	dir := t.TempDir()
	writeHistory(t, dir, "a.txt", villainHand)

	svc := NewService(DirectoryLocator(dir))
	_, err := svc.ImportAll(context.Background(), nil)
	if !errors.Is(err, ErrNoHeroHands) {
		t.Errorf("expected ErrNoHeroHands for hero-free input, got %v", err)
	}
}

func TestAppendTextDeduplicates(t *testing.T) {
	dir := t.TempDir()
	writeHistory(t, dir, "a.txt", sampleHand)

	svc := NewService(DirectoryLocator(dir))
	if _, err := svc.ImportAll(context.Background(), nil); err != nil {
		t.Fatalf("ImportAll: %v", err)
	}

	// The watcher may replay text already imported; the hand count must not
	// grow.
	if total := svc.AppendText(sampleHand); total != 1 {
		t.Errorf("expected 1 hand after duplicate append, got %d", total)
	}

	fresh := `Poker Hand #RC777: Hold'em No Limit ($0.01/$0.02) - 2025/09/11 07:00:00
Table 'RushAndCash17757914' 6-max Seat #1 is the button
Seat 1: 9e47efb ($2.05 in chips)
Seat 2: Hero ($1.13 in chips)
Seat 3: e329e9c8 ($1.99 in chips)
Hero: posts small blind $0.01
e329e9c8: posts big blind $0.02
*** HOLE CARDS ***
Dealt to Hero [Ah Ad]
Hero: folds
*** SUMMARY ***
Total pot $0.02 | Rake $0
Seat 3: e329e9c8 collected ($0.02)
`
	if total := svc.AppendText(fresh); total != 2 {
		t.Errorf("expected 2 hands after new append, got %d", total)
	}
}

func TestExportImportAggregate(t *testing.T) {
	dir := t.TempDir()
	writeHistory(t, dir, "a.txt", sampleHand)

	svc := NewService(DirectoryLocator(dir))
	if _, err := svc.ImportAll(context.Background(), nil); err != nil {
		t.Fatalf("ImportAll: %v", err)
	}

	exportPath := filepath.Join(dir, "export.json")
	if err := svc.ExportAggregate(exportPath); err != nil {
		t.Fatalf("ExportAggregate: %v", err)
	}

	other := NewService(DirectoryLocator(t.TempDir()))
	total, err := other.ImportAggregate(exportPath)
	if err != nil {
		t.Fatalf("ImportAggregate: %v", err)
	}
	if total != 1 {
		t.Errorf("expected 1 hand after aggregate import, got %d", total)
	}
	if r := other.Report(); r.TotalProfit != 2 {
		t.Errorf("expected imported profit 2 cents, got %d", r.TotalProfit)
	}
}
