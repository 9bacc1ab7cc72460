package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"thaqu/internal/config"
	"thaqu/internal/contact"
	"thaqu/internal/i18n"
	"thaqu/internal/observability"
	"thaqu/internal/tui"
)

var version = "dev"

func main() {
	cfgPath := flag.String("config", config.DefaultPath(), "path to the YAML config file")
	catalogPath := flag.String("catalog", "", "lot table (.yaml, .yml or .csv); overrides the config")
	imageDir := flag.String("images", "", "directory holding the plan and satellite images")
	locales := i18n.Default()
	lang := flag.String("lang", "", fmt.Sprintf("interface language (%s, or auto for $LANG)", strings.Join(locales.Supported(), ", ")))
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("thaqu", version)
		return
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}
	if *imageDir != "" {
		cfg.Images.Dir = *imageDir
	}

	logger, err := observability.NewLogger(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	cat, err := cfg.LoadCatalog()
	if err != nil {
		logger.Error("catalog load failed", zap.String("path", cfg.Catalog.Path), zap.Error(err))
		log.Fatal(err)
	}

	pref := *lang
	if pref == "" {
		pref = cfg.Locale
	}
	if pref == "auto" {
		pref = os.Getenv("LANG")
	}
	tr := locales.For(pref)
	logger.Info("starting",
		zap.String("version", version),
		zap.Int("lots", cat.Len()),
		zap.String("lang", tr.Lang()),
	)

	m := tui.New(tui.Options{
		Catalog:    cat,
		Translator: tr,
		Sink:       contact.NewSink(cat, cfg.Contact.Email, cfg.Contact.WhatsApp, cfg.Contact.Subject),
		Logger:     logger,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
	final, err := p.Run()
	if err != nil {
		logger.Error("program exited", zap.Error(err))
		log.Fatal(err)
	}
	// links are copied to the clipboard; print the last one too for
	// terminals without clipboard access
	if fm, ok := final.(tui.Model); ok && fm.LastLink() != "" {
		fmt.Println(fm.LastLink())
	}
}
