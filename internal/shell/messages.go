package shell

import (
	"fmt"
	"strings"

	"github.com/phrazzld/flashcards/internal/service/quiz"
	"github.com/phrazzld/flashcards/internal/service/stats"
)

// Fixed texts printed by the shell.
const (
	MsgMenu             = "Input the action (add, ask, log, hardest card, reset stats, exit):"
	MsgCardPrompt       = "The card:"
	MsgDefinitionPrompt = "The definition of the card:"
	MsgTimesPrompt      = "How many times to ask?"
	MsgNoCards          = "There are no cards to ask about."
	MsgCorrect          = "Correct answer."
	MsgFileNamePrompt   = "File name:"
	MsgLogSaved         = "The log has been saved."
	MsgLogSaveFailed    = "An error occurred while saving the log."
	MsgNoErrors         = "There are no cards with errors."
	MsgStatsReset       = "Card statistics have been reset."
	MsgBye              = "Bye bye!"
	MsgCardsSaveFailed  = "An error occurred while saving the cards."
	MsgFileNotFound     = "File not found."
	MsgCardsLoadFailed  = "An error occurred while loading the cards."
)

// Commands understood by the shell.
const (
	CmdAdd     = "add"
	CmdAsk     = "ask"
	CmdLog     = "log"
	CmdHardest = "hardest card"
	CmdReset   = "reset stats"
	CmdExit    = "exit"
)

func msgCardExists(term string) string {
	return fmt.Sprintf(`The card "%s" already exists.`, term)
}

func msgDefinitionExists(definition string) string {
	return fmt.Sprintf(`The definition "%s" already exists.`, definition)
}

func msgPairAdded(term, definition string) string {
	return fmt.Sprintf(`The pair ("%s":"%s") has been added.`, term, definition)
}

func msgInvalidNumber(input string) string {
	return fmt.Sprintf(`"%s" is not a valid number.`, input)
}

func msgAskDefinition(term string) string {
	return fmt.Sprintf(`Print the definition of "%s":`, term)
}

func msgCardsLoaded(n int) string {
	return fmt.Sprintf("%d cards have been loaded.", n)
}

func msgCardsSaved(n int) string {
	return fmt.Sprintf("%d cards have been saved.", n)
}

func msgUnknownCommand(command string) string {
	return "Unknown command: " + command
}

// msgFeedback renders the verdict for one quiz round.
func msgFeedback(r quiz.Result) string {
	switch r.Outcome {
	case quiz.OutcomeCorrect:
		return MsgCorrect
	case quiz.OutcomeWrongElsewhere:
		return fmt.Sprintf(`Wrong. The right answer is "%s", but your definition is correct for "%s".`,
			r.Definition, r.Owner)
	default:
		return fmt.Sprintf(`Wrong. The right answer is "%s".`, r.Definition)
	}
}

// msgHardest renders a hardest-card report.
func msgHardest(report stats.Report) string {
	switch report.Kind {
	case stats.KindSingle:
		return fmt.Sprintf(`The hardest card is "%s". You have %d errors answering it.`,
			report.Terms[0], report.Mistakes)
	case stats.KindPlural:
		quoted := make([]string, len(report.Terms))
		for i, term := range report.Terms {
			quoted[i] = `"` + term + `"`
		}
		return fmt.Sprintf("The hardest cards are %s. You have %d errors answering them.",
			strings.Join(quoted, ", "), report.Mistakes)
	default:
		return MsgNoErrors
	}
}
