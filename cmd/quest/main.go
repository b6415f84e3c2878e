package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/quest-solver/internal/config"
	"github.com/napolitain/quest-solver/internal/converter"
	"github.com/napolitain/quest-solver/internal/loader"
	"github.com/napolitain/quest-solver/internal/logger"
	"github.com/napolitain/quest-solver/internal/models"
	"github.com/napolitain/quest-solver/internal/solver/quests"
)

var (
	playerName  string
	questsPath  string
	lampSkills  []string
	priorities  []string
	ironman     bool
	recommended bool
	quiet       bool
	jsonOutput  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quest",
		Short: "RuneScape quest path optimizer",
		Long: `A greedy planning solver that computes the optimal order to
complete quests, including the training and lamp usage in between.`,
		RunE: runSolver,
	}

	rootCmd.Flags().StringVarP(&playerName, "name", "n", "", "Player name to fetch live stats for")
	rootCmd.Flags().StringVarP(&questsPath, "quests", "f", "", "Path to quest catalog YAML")
	rootCmd.Flags().StringSliceVarP(&lampSkills, "lamp-skills", "l", nil, "Preferred lamp skills, in order")
	rootCmd.Flags().StringSliceVarP(&priorities, "priority", "p", nil, "Quest priority overrides, id=LOW|NORMAL|HIGH")
	rootCmd.Flags().BoolVar(&ironman, "ironman", false, "Ironman account")
	rootCmd.Flags().BoolVar(&recommended, "recommended", false, "Use recommended requirements")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the path as JSON")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSolver(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log := logger.Setup(cfg)

	if questsPath == "" {
		questsPath = cfg.QuestsPath
	}

	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	if !quiet && !jsonOutput {
		titleColor.Println("\n╭───────────────────────────╮")
		titleColor.Println("│  Quest Path Optimizer     │")
		titleColor.Println("╰───────────────────────────╯")
		fmt.Println()
	}

	catalog, err := loader.LoadQuests(questsPath)
	if err != nil {
		return fmt.Errorf("loading quest catalog: %w", err)
	}

	priorityOverrides, err := parsePriorities(priorities)
	if err != nil {
		return err
	}
	entries := loader.CreateQuestEntries(catalog, priorityOverrides)

	preferred, err := parseLampSkills(lampSkills)
	if err != nil {
		return err
	}

	var cache loader.Cache
	if cfg.RedisURL != "" {
		redisCache, err := loader.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, continuing without cache", "error", err)
		} else {
			defer redisCache.Close()
			cache = redisCache
		}
	}

	profiles := loader.NewProfileLoader(cfg.HiscoresURL, cfg.RuneMetricsURL, cache, log)
	player := profiles.Load(context.Background(), playerName, entries, preferred, ironman, recommended)

	if !quiet && !jsonOutput {
		infoColor.Printf("Loaded %d quests, %d already completed\n\n",
			len(player.Quests()), len(player.CompletedQuests()))
	}

	path, err := quests.NewPathFinder(log).Find(player)
	if err != nil {
		return fmt.Errorf("planning failed: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(converter.PathToDTO(path))
	}

	printPath(path)

	if !quiet {
		fmt.Println()
		successColor.Printf("Path complete: %d actions, %.1f%% of quests done\n",
			len(path.Actions), path.Stats.PercentComplete)
	}
	return nil
}

func printPath(path *quests.Path) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Type", "Quest", "Action"}),
	)
	for i, a := range path.Actions {
		_ = table.Append([]string{
			strconv.Itoa(i + 1),
			a.Type().String(),
			a.Quest().Name(),
			a.Message(),
		})
	}
	_ = table.Render()
}

func parsePriorities(overrides []string) (map[int]models.QuestPriority, error) {
	result := make(map[int]models.QuestPriority, len(overrides))
	for _, o := range overrides {
		id, name, ok := strings.Cut(o, "=")
		if !ok {
			return nil, fmt.Errorf("invalid priority override %q, want id=LOW|NORMAL|HIGH", o)
		}
		questID, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("invalid quest id in %q: %w", o, err)
		}
		priority, err := models.ParseQuestPriority(name)
		if err != nil {
			return nil, err
		}
		result[questID] = priority
	}
	return result, nil
}

func parseLampSkills(names []string) ([]models.Skill, error) {
	skills := make([]models.Skill, 0, len(names))
	for _, n := range names {
		s, err := models.ParseSkill(n)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, nil
}
