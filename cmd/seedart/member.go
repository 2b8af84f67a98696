package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seedart/internal/prng"
	"github.com/vovakirdan/seedart/internal/registry"
)

var flagMemberOutput string

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage per-account member seeds",
	Long: `Every account owns one seed that drives its member card. A seed is
assigned at random the first time an account is looked up.

Examples:
  seedart member seed ada
  seedart member set ada 1,2,3,4
  seedart member card ada -o ada.svg
  seedart member list`,
}

var memberSeedCmd = &cobra.Command{
	Use:   "seed <account>",
	Short: "Print the seed of an account, assigning one if needed",
	Args:  cobra.ExactArgs(1),
	Run:   runMemberSeed,
}

var memberSetCmd = &cobra.Command{
	Use:   "set <account> <seed>",
	Short: "Replace the seed of an account",
	Args:  cobra.ExactArgs(2),
	Run:   runMemberSet,
}

var memberCardCmd = &cobra.Command{
	Use:   "card <account>",
	Short: "Render the member card of an account",
	Args:  cobra.ExactArgs(1),
	Run:   runMemberCard,
}

var memberListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all members and their seeds",
	Run:   runMemberList,
}

func init() {
	memberCardCmd.Flags().StringVarP(&flagMemberOutput, "output", "o", "", "Output file (default: stdout)")

	memberCmd.AddCommand(memberSeedCmd)
	memberCmd.AddCommand(memberSetCmd)
	memberCmd.AddCommand(memberCardCmd)
	memberCmd.AddCommand(memberListCmd)
}

func randomSeed() prng.Seed {
	return prng.RandomSeed(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func runMemberSeed(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	store := mustOpenStore(cfg)
	defer store.Close()

	seed, err := store.MemberSeed(args[0], randomSeed)
	if err != nil {
		fail("%v", err)
	}
	fmt.Println(seed)
}

func runMemberSet(_ *cobra.Command, args []string) {
	seed, err := prng.ParseSeed(args[1])
	if err != nil {
		fail("%v", err)
	}

	cfg := loadConfig()
	logger := newLogger(cfg)
	store := mustOpenStore(cfg)
	defer store.Close()

	if err := store.SetMemberSeed(args[0], seed); err != nil {
		fail("%v", err)
	}
	logger.Info("member seed set", "account", args[0], "seed", seed.String())
}

func runMemberCard(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)
	store := mustOpenStore(cfg)
	defer store.Close()

	seed, err := store.MemberSeed(args[0], randomSeed)
	if err != nil {
		fail("%v", err)
	}
	out, err := registry.RenderMemberCard(seed, cfg, args[0])
	if err != nil {
		fail("%v", err)
	}
	if err := writeOutput(flagMemberOutput, out); err != nil {
		fail("%v", err)
	}
	if _, err := store.RecordRender("member-card", seed, len(out)); err != nil {
		logger.Warn("could not record render", "error", err)
	}
}

func runMemberList(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := mustOpenStore(cfg)
	defer store.Close()

	members, err := store.ListMembers()
	if err != nil {
		fail("%v", err)
	}
	if len(members) == 0 {
		fmt.Println("No members yet.")
		return
	}

	maxLen := len("Account")
	for _, m := range members {
		maxLen = max(maxLen, len(m.Account))
	}
	fmt.Printf("  %-*s  %-24s  %s\n", maxLen, "Account", "Seed", "Joined")
	fmt.Printf("  %-*s  %-24s  %s\n", maxLen, "-------", "----", "------")
	for _, m := range members {
		fmt.Printf("  %-*s  %-24s  %s\n", maxLen, m.Account, m.Seed, m.CreatedAt.Format("2006-01-02 15:04"))
	}
}
