package cmd

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mentimath/mentimath/internal/quiz"
	"github.com/mentimath/mentimath/internal/tutorial"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Inspect and answer the quiz banks",
}

var quizListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the quiz banks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		banks, err := quiz.Banks()
		if err != nil {
			return err
		}
		for _, b := range banks {
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-40s %d questions\n", b.ID, b.Title, b.Len())
		}
		return nil
	},
}

var quizAnswersCmd = &cobra.Command{
	Use:       "answers BANK",
	Short:     "Print the answer key for a bank",
	ValidArgs: quiz.BankIDs(),
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := quiz.LoadBank(args[0])
		if err != nil {
			return err
		}
		for _, q := range bank.Questions {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n    %d) %s\n", q.Prompt, q.AnswerIndex()+1, q.Answer)
		}
		return nil
	},
}

var quizCheckCmd = &cobra.Command{
	Use:   "check BANK ANSWER...",
	Short: "Score one answer per question",
	Long: "Score answers given in question order. Each ANSWER is either the\n" +
		"1-based option number or the exact option text.",
	Args: cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return quiz.BankIDs(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := quiz.LoadBank(args[0])
		if err != nil {
			return err
		}
		answers := args[1:]
		if len(answers) != bank.Len() {
			return fmt.Errorf("bank %q has %d questions, got %d answers", bank.ID, bank.Len(), len(answers))
		}

		session := quiz.NewSession(bank)
		for i, a := range answers {
			if err := selectAnswer(session, i, a); err != nil {
				return err
			}
		}
		res := tutorial.QuizPass(bank, session.Selections(), true)
		logger.Info("quiz submitted",
			"bank", bank.ID,
			"attempt", uuid.NewString(),
			"score", res.Score,
			"total", res.Total,
		)

		for _, line := range res.Lines() {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	quizCmd.AddCommand(quizListCmd, quizAnswersCmd, quizCheckCmd)
}

// selectAnswer accepts an option number first, then exact option text.
func selectAnswer(s *quiz.Session, i int, answer string) error {
	if n, err := strconv.Atoi(answer); err == nil {
		if err := s.SelectIndex(i, n-1); err != nil {
			return fmt.Errorf("Q%d: %w", i+1, err)
		}
		return nil
	}
	if err := s.Select(i, answer); err != nil {
		return fmt.Errorf("Q%d: %w", i+1, err)
	}
	return nil
}
