// Package main is the entry point for the stairgen mesh generator.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/stairgen/internal/config"
	"github.com/Faultbox/stairgen/internal/export"
	"github.com/Faultbox/stairgen/internal/logger"
	"github.com/Faultbox/stairgen/pkg/mesh"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Error("failed to save config", zap.String("path", path), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config saved", zap.String("path", path))
	}

	if err := run(cfg); err != nil {
		logger.Error("generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	format, err := export.ParseFormat(cfg.Output.Format, cfg.Output.Path)
	if err != nil {
		return err
	}

	log := logger.Named("stairs")
	s, err := cfg.Stairs.Generate()
	if err != nil {
		return err
	}
	log.Debug("geometry generated",
		zap.String("kind", cfg.Stairs.Kind),
		zap.Int("steps", s.Layout.NumSteps),
		zap.Int("vertices", len(s.Geometry.Vertices)),
		zap.Int("faces", len(s.Geometry.Faces)))

	buf, err := s.Assemble()
	if err != nil {
		return err
	}
	topo := mesh.Analyze(buf)
	if cfg.Stairs.Sides && !topo.Oriented() {
		log.Warn("closed staircase is not watertight",
			zap.Int("boundary", topo.Boundary),
			zap.Int("non_manifold", topo.NonManifold),
			zap.Int("unpaired", topo.Unpaired))
	}

	name := strings.TrimSuffix(filepath.Base(cfg.Output.Path), filepath.Ext(cfg.Output.Path))
	if err := export.WriteFile(cfg.Output.Path, buf, format, name); err != nil {
		return err
	}
	logger.Info("mesh written",
		zap.String("path", cfg.Output.Path),
		zap.String("format", string(format)),
		zap.Int("triangles", buf.TriangleCount()))

	printReport(os.Stdout, report{
		Kind:     cfg.Stairs.Kind,
		Path:     cfg.Output.Path,
		Format:   format,
		Layout:   s.Layout,
		Parts:    s.Geometry.CountParts(),
		Buffer:   buf,
		Topology: topo,
		Closed:   cfg.Stairs.Sides,
	})
	return nil
}
