package bdata

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"git.thinkinpower.net/cardkit/mod"
	"github.com/pkg/errors"
)

func TestStaticLongestPrefixWins(t *testing.T) {
	cases := []struct {
		number string
		typ    mod.CardType
		level  mod.CardLevel
		region mod.CardRegion
	}{
		{"4242424242424242", mod.CardTypeCredit, mod.LevelGold, ""},
		{"5105105105105100", mod.CardTypeCredit, mod.LevelClassic, ""},
		{"5555555555554444", mod.CardTypeCredit, mod.LevelBlack, ""},
		{"5599000000000000", mod.CardTypeCredit, mod.LevelPlatinum, ""},
		{"4917300000000000", mod.CardTypePrepaid, mod.LevelClassic, ""},
		{"4917000000000000", mod.CardTypeCredit, mod.LevelSignature, ""},
		{"6362970000000000", mod.CardTypeCredit, mod.LevelClassic, mod.RegionLatam},
	}
	for _, c := range cases {
		got := Static().Lookup(c.number)
		if got.Type != c.typ || got.Level != c.level || got.Region != c.region {
			t.Errorf("Lookup(%s) = %+v, want %s/%s/%s", c.number, got, c.typ, c.level, c.region)
		}
	}
}

func TestStaticNoMatchIsEmpty(t *testing.T) {
	for _, number := range []string{"", "1234567890123456", "9"} {
		if got := Static().Lookup(number); !got.IsZero() {
			t.Errorf("Lookup(%q) = %+v, want empty", number, got)
		}
	}
}

func TestValidPrefix(t *testing.T) {
	cases := map[string]bool{
		"":          false,
		"4":         true,
		"42424242":  true,
		"424242424": false,
		"42a4":      false,
	}
	for in, want := range cases {
		if got := ValidPrefix(in); got != want {
			t.Errorf("ValidPrefix(%q) = %v, want %v", in, got, want)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestMemoryDatabaseOverlay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "issuers.bd"),
		"prefix,type,level,region,bank,country\n"+
			"424299,debit,business,europe,Example Bank,DE\n"+
			"4111,prepaid,unknown,,,\n"+
			"abc,credit,gold,,,\n"+
			"5123,credit,diamond,,,\n")
	writeFile(t, filepath.Join(dir, "ignored.txt"), "4000,debit,gold\n")

	db, err := Open(BinDatabaseModeMemory, BinDataConfig{DataDir: dir})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	got := db.Lookup("4242991234567890")
	want := mod.BinMetadata{Type: mod.CardTypeDebit, Level: mod.LevelBusiness, Region: mod.RegionEurope, Bank: "Example Bank", Country: "DE"}
	if got != want {
		t.Errorf("overlay lookup = %+v, want %+v", got, want)
	}
	if got := db.Lookup("4242000000000000"); got.Level != mod.LevelGold {
		t.Errorf("static entry lost: %+v", got)
	}
	if got := db.Lookup("4111111111111111"); got.Type != mod.CardTypePrepaid {
		t.Errorf("overlay should override static prefix, got %+v", got)
	}
	if got := db.Lookup("4000000000000000"); got.Type != mod.CardTypeCredit {
		t.Errorf("non .bd file was loaded: %+v", got)
	}
	if got := db.Lookup("5123000000000000"); got.Level != mod.LevelClassic {
		t.Errorf("malformed row applied: %+v", got)
	}
}

func TestMemoryDatabaseSave(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(BinDatabaseModeMemory, BinDataConfig{DataDir: dir})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	record := mod.BinRecord{Prefix: "601100", BinMetadata: mod.BinMetadata{Type: mod.CardTypeDebit, Level: mod.LevelGold}}
	if err := db.Save(record); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got, err := db.ReadExact("601100"); err != nil || got.Type != mod.CardTypeDebit {
		t.Fatalf("ReadExact = %+v, %v", got, err)
	}

	reopened, err := Open(BinDatabaseModeMemory, BinDataConfig{DataDir: dir})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := reopened.Lookup("6011001234567890"); got.Level != mod.LevelGold {
		t.Errorf("saved record not persisted: %+v", got)
	}

	// known prefixes keep their metadata
	if err := db.Save(mod.BinRecord{Prefix: "4242", BinMetadata: mod.BinMetadata{Type: mod.CardTypeDebit}}); err != nil {
		t.Fatalf("Save existing: %v", err)
	}
	if got := db.Lookup("4242424242424242"); got.Type != mod.CardTypeCredit {
		t.Errorf("existing prefix overwritten: %+v", got)
	}
}

func TestMemoryDatabaseSaveWithoutDataDir(t *testing.T) {
	db := NewMemoryDatabase()
	if err := db.Init(BinDataConfig{}); err != nil {
		t.Fatal(err)
	}
	err := db.Save(mod.BinRecord{Prefix: "999999", BinMetadata: mod.BinMetadata{Type: mod.CardTypeCredit}})
	if errors.Cause(err) != ErrNoDataDir {
		t.Fatalf("Save without data dir = %v, want ErrNoDataDir", err)
	}
	if err := db.Save(mod.BinRecord{Prefix: "4242424242424242"}); err == nil {
		t.Fatal("a full card number must not be accepted as a bin")
	}
}

func TestReadExactNotFound(t *testing.T) {
	db := NewMemoryDatabase()
	if _, err := db.ReadExact("999999"); errors.Cause(err) != ErrNotFound {
		t.Fatalf("ReadExact = %v, want ErrNotFound", err)
	}
}

func TestMemoryDatabaseConcurrentSave(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(BinDatabaseModeMemory, BinDataConfig{DataDir: dir})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	record := mod.BinRecord{Prefix: "99112233", BinMetadata: mod.BinMetadata{Type: mod.CardTypeCredit, Level: mod.LevelGold}}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := db.Save(record); err != nil {
				t.Errorf("Save: %v", err)
			}
		}()
	}
	wg.Wait()

	content, err := os.ReadFile(filepath.Join(dir, feedbackFileName))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(content), "99112233,"); n != 1 {
		t.Fatalf("prefix written %d times:\n%s", n, content)
	}
}

func waitForLookup(t *testing.T, db BinDatabase, number string, want mod.CardLevel) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if db.Lookup(number).Level == want {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("Lookup(%s) never reached level %s, got %+v", number, want, db.Lookup(number))
}

func TestWatchReloadsChangedFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "issuers")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	db, err := Open(BinDatabaseModeMemory, BinDataConfig{DataDir: dir})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, db, dir) }()
	// give the watcher time to register the directories
	time.Sleep(100 * time.Millisecond)

	writeFile(t, filepath.Join(dir, "live.bd"), "prefix,type,level,region,bank,country\n99000001,debit,platinum,,,\n")
	waitForLookup(t, db, "9900000112345678", mod.LevelPlatinum)

	writeFile(t, filepath.Join(sub, "nested.bd"), "99000002,credit,black,,,\n")
	waitForLookup(t, db, "9900000212345678", mod.LevelBlack)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestWatchMissingDir(t *testing.T) {
	db := NewMemoryDatabase()
	if err := Watch(context.Background(), db, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("Watch on a missing directory should fail")
	}
}
