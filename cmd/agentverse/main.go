// main.go — agentverse CLI
// Runs the invocation pipeline from the terminal in one of three modes.
// - run: execute one cataloged agent against a message (plus image files)
// - analyze: HR document/resume analysis over a message and image files
// - recommend: interactive chat that recommends agents from the catalog
//
// Examples:
//
//	export OPENAI_API_KEY=...
//	go run . -mode run -agent 1 -message "Review my resume" resume.png
//
//	go run . -mode analyze -provider openai -message "Rate this CV" cv.jpg
//
//	go run . -mode recommend
//
// Postgres catalog:
//
//	go run . -catalog postgres -postgres-url postgres://localhost/agentverse -mode recommend
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	agentverse "github.com/agentverse/agentverse"
	"github.com/agentverse/agentverse/src/auth"
	"github.com/agentverse/agentverse/src/cache"
	"github.com/agentverse/agentverse/src/catalog"
	"github.com/agentverse/agentverse/src/ledger"
	"github.com/agentverse/agentverse/src/models"
	"github.com/agentverse/agentverse/src/notify"
	"github.com/agentverse/agentverse/src/render"
	"github.com/agentverse/agentverse/src/storage"
)

var (
	flagMode     = flag.String("mode", "run", "Pipeline mode: run|analyze|recommend")
	flagAgent    = flag.String("agent", "1", "Catalog agent ID for -mode run")
	flagProvider = flag.String("provider", "openai", "LLM provider: openai|gemini|anthropic|ollama|dummy")
	flagModel    = flag.String("model", "", "Model ID override (defaults to the pipeline model)")
	flagMessage  = flag.String("message", "", "User message (run/analyze; recommend reads STDIN)")
	flagEmail    = flag.String("email", "demo@agentverse.io", "Signed-in user email for usage records")
	flagTimeout  = flag.Duration("timeout", 90*time.Second, "Per-invocation timeout")

	flagCatalog   = flag.String("catalog", "static", "Catalog source: static|postgres|mongo")
	flagPostgres  = flag.String("postgres-url", "", "Postgres connection string for -catalog postgres")
	flagMongoURL  = flag.String("mongo-url", "mongodb://localhost:27017", "MongoDB URI for -catalog mongo")
	flagMongoDB   = flag.String("mongo-db", "agentverse", "MongoDB database name")
	flagMongoColl = flag.String("mongo-collection", "agents", "MongoDB collection name")

	flagUploadDir  = flag.String("upload-dir", "", "Directory for uploaded assets (in-memory store if empty)")
	flagPublicBase = flag.String("public-base", "https://storage.local", "Public base URL for uploaded assets")
)

func main() {
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *flagTimeout)
	defer cancel()

	gen, err := models.NewProvider(ctx, strings.ToLower(*flagProvider), *flagModel)
	if err != nil {
		fail(err)
	}

	profiles, closeCatalog, err := loadCatalog(ctx)
	if err != nil {
		fail(err)
	}
	defer closeCatalog()

	notifier := notify.NewLogNotifier(nil)
	uploader := storage.NewUploader(newStore(), notifier)

	switch strings.ToLower(*flagMode) {
	case "run":
		err = runAgent(ctx, profiles, gen, uploader, notifier)
	case "analyze":
		err = analyze(ctx, gen, uploader, notifier)
	case "recommend":
		// Chat turns often repeat; memoize completions across the loop.
		cached := models.NewCachedGenerator(gen, cache.NewResponseCache(64, 10*time.Minute))
		err = recommend(profiles, cached, notifier)
	default:
		err = fmt.Errorf("unknown mode %q", *flagMode)
	}
	if err != nil {
		fail(err)
	}
}

// loadCatalog resolves -catalog into a profile list, seeding the backing
// store with the defaults when it is empty.
func loadCatalog(ctx context.Context) ([]catalog.Profile, func(), error) {
	noop := func() {}
	switch strings.ToLower(*flagCatalog) {
	case "static", "":
		profiles, err := catalog.DefaultCatalog().List(ctx)
		return profiles, noop, err
	case "postgres":
		pc, err := catalog.NewPostgresCatalog(ctx, *flagPostgres)
		if err != nil {
			return nil, noop, err
		}
		if err := pc.EnsureSchema(ctx); err != nil {
			pc.Close()
			return nil, noop, err
		}
		if err := pc.Seed(ctx, catalog.DefaultProfiles()); err != nil {
			pc.Close()
			return nil, noop, err
		}
		profiles, err := pc.List(ctx)
		return profiles, pc.Close, err
	case "mongo":
		mc, err := catalog.NewMongoCatalog(ctx, *flagMongoURL, *flagMongoDB, *flagMongoColl)
		if err != nil {
			return nil, noop, err
		}
		if err := mc.Seed(ctx, catalog.DefaultProfiles()); err != nil {
			_ = mc.Close()
			return nil, noop, err
		}
		profiles, err := mc.List(ctx)
		return profiles, func() { _ = mc.Close() }, err
	default:
		return nil, noop, fmt.Errorf("unknown catalog source %q", *flagCatalog)
	}
}

func newStore() storage.BlobStore {
	if *flagUploadDir != "" {
		return storage.NewLocalStore(*flagUploadDir, *flagPublicBase)
	}
	return storage.NewMemoryStore(*flagPublicBase)
}

func runAgent(ctx context.Context, profiles []catalog.Profile, gen models.Generator, up *storage.Uploader, n notify.Notifier) error {
	var profile catalog.Profile
	found := false
	for _, p := range profiles {
		if p.ID == *flagAgent {
			profile, found = p, true
			break
		}
	}
	if !found {
		return fmt.Errorf("agent %q: %w", *flagAgent, catalog.ErrNotFound)
	}

	user, err := auth.NewManager().Login(*flagEmail, "")
	if err != nil {
		return err
	}

	usage := ledger.New()
	sess, err := agentverse.NewAgentRunSession(profile, gen, up, n)
	if err != nil {
		return err
	}
	// Each successful run earns the agent its listed price.
	sess.OnSuccess(func(string) {
		usage.Record(ledger.Usage{
			AgentID:   profile.ID,
			AgentName: profile.Name,
			User:      user.Email,
			Earnings:  profile.Price,
		})
	})
	if err := attachFiles(sess, flag.Args()); err != nil {
		return err
	}

	if err := sess.Trigger(ctx, *flagMessage); err != nil {
		printBlocks(sess.ResultBlocks())
		return err
	}
	printBlocks(sess.ResultBlocks())

	sum := usage.Summarize()
	fmt.Printf("\nusage: %d run(s), %s %s earned\n", sum.TotalUses, formatEarnings(sum.TotalEarnings), profile.Currency)
	return nil
}

func analyze(ctx context.Context, gen models.Generator, up *storage.Uploader, n notify.Notifier) error {
	sess, err := agentverse.NewDocumentAnalysisSession(gen, up, n)
	if err != nil {
		return err
	}
	if err := attachFiles(sess, flag.Args()); err != nil {
		return err
	}
	if err := sess.Trigger(ctx, *flagMessage); err != nil {
		printBlocks(sess.ResultBlocks())
		return err
	}
	printBlocks(sess.ResultBlocks())
	return nil
}

func recommend(profiles []catalog.Profile, gen models.Generator, n notify.Notifier) error {
	sess, err := agentverse.NewRecommendationSession(profiles, gen, n)
	if err != nil {
		return err
	}
	for _, e := range sess.Transcript() {
		fmt.Printf("%s> %s\n", e.Role, e.Text)
	}

	sc := bufio.NewScanner(os.Stdin)
	fmt.Print("you> ")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			fmt.Print("you> ")
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		ctx, cancel := context.WithTimeout(context.Background(), *flagTimeout)
		err := sess.Trigger(ctx, line)
		cancel()
		if err != nil && !errors.Is(err, models.ErrGeneration) {
			return err
		}
		entries := sess.Transcript()
		if len(entries) > 0 {
			printEntry(entries[len(entries)-1])
		}
		fmt.Print("you> ")
	}
	return sc.Err()
}

func printEntry(e agentverse.TranscriptEntry) {
	fmt.Printf("%s>\n", e.Role)
	printBlocks(render.Render(e.Text))
}

// printBlocks writes each block on its own line, links as "label (target)".
func printBlocks(blocks []render.Block) {
	for _, b := range blocks {
		var sb strings.Builder
		for _, seg := range b.Segments {
			if seg.IsLink() {
				fmt.Fprintf(&sb, "%s (%s)", seg.Label, seg.Target)
			} else {
				sb.WriteString(seg.Text)
			}
		}
		fmt.Println(sb.String())
	}
}

func attachFiles(sess *agentverse.Session, paths []string) error {
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		sess.AttachAsset(storage.Asset{Name: filepath.Base(p), Data: data})
	}
	return nil
}

func formatEarnings(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", v), "0"), ".")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
