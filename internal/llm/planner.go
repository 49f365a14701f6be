package llm

import (
	"context"
	"fmt"
	"strings"
)

// Planner exposes the planner collaborator operations the engine consumes.
// All calls go through the active provider; callers bound them with a
// context timeout so a slow backend never blocks a plan indefinitely.
type Planner struct {
	Model string
}

// Prompt for converting a user command into ACTION lines.
func buildPlanPrompt(userCommand string) string {
	var sb strings.Builder

	sb.WriteString("You are a desktop-automation planner. Convert the user's command into executable actions.\n")
	sb.WriteString("Correct minor spelling mistakes, normalize app names, and prefer local applications when appropriate.\n")
	sb.WriteString("THINK STEP-BY-STEP: break complex commands into logical sub-actions.\n\n")

	sb.WriteString("Valid action types:\n")
	sb.WriteString("  OPEN <path/url/app> - Opens a file, folder, URL, or application\n")
	sb.WriteString("  SEARCH <query> - Searches in the current browser (opens one if needed)\n")
	sb.WriteString("  TYPE <text> - Types text into the currently focused window\n")
	sb.WriteString("  PRESS <keys> - Presses keys: space, enter, right, left, volumeup, volumedown, ctrl+c, alt+tab, ...\n")
	sb.WriteString("  CLICK <button> - Clicks a mouse button (left, right, middle)\n")
	sb.WriteString("  SWITCH <app> - Switches to an open application\n")
	sb.WriteString("  NEXT_TAB / PREV_TAB / NEW_TAB / CLOSE_TAB - Browser tab control\n")
	sb.WriteString("  SET_ALARM <time> - Sets an alarm ('19:00' or '7:00 PM')\n")
	sb.WriteString("  YOUTUBE_PLAY <query> - Searches YouTube and plays the first result directly\n")
	sb.WriteString("  SLEEP <seconds> - Waits for the given number of seconds\n")
	sb.WriteString("  WAIT_FOR_PAGE - Waits for a page to load\n\n")

	sb.WriteString("EXAMPLES:\n")
	sb.WriteString("- 'play music' -> ACTION: OPEN spotify / ACTION: SLEEP 1 / ACTION: PRESS space\n")
	sb.WriteString("- 'play a video of X' -> ACTION: YOUTUBE_PLAY X\n")
	sb.WriteString("- 'set alarm for 7 pm' -> ACTION: SET_ALARM 19:00\n")
	sb.WriteString("- 'open notepad and write hi' -> ACTION: OPEN notepad / ACTION: SLEEP 1 / ACTION: TYPE hi\n\n")

	sb.WriteString("OUTPUT RULES:\n")
	sb.WriteString("- Output ONLY ACTION lines, one per line, each starting with 'ACTION:'. No commentary.\n")
	sb.WriteString("- Always add SLEEP or WAIT_FOR_PAGE after OPEN (SLEEP 3 for web URLs, SLEEP 1 for apps).\n")
	sb.WriteString("- Only add PRESS alt+tab when the user explicitly asks for background/minimize.\n")
	sb.WriteString("- For media commands like 'skip' or 'pause', assume the player is already focused.\n\n")

	sb.WriteString(fmt.Sprintf("User command: %q\nActions:\n", userCommand))
	return sb.String()
}

func buildNormalizePrompt(rawTarget, userCommand string) string {
	var sb strings.Builder
	sb.WriteString("You normalize an ambiguous open-target into a concrete destination.\n")
	sb.WriteString("Reply with EXACTLY ONE line, no extra text, in one of these forms:\n")
	sb.WriteString("URL:<absolute url>\nAPP:<application name>\nPATH:<filesystem path>\nNONE\n\n")
	sb.WriteString(fmt.Sprintf("Target: %q\nOriginal command: %q\nAnswer: ", rawTarget, userCommand))
	return sb.String()
}

// GeneratePlanText asks the backend for a plan for the given command.
func (p *Planner) GeneratePlanText(ctx context.Context, userCommand string) (string, error) {
	text, err := Generate(ctx, buildPlanPrompt(userCommand), p.Model)
	if err != nil {
		return "", fmt.Errorf("failed to generate plan: %w", err)
	}
	return text, nil
}

// GenerateLongForm produces multi-paragraph content (essays, code) for the
// direct long-form shortcuts.
func (p *Planner) GenerateLongForm(ctx context.Context, prompt string) (string, error) {
	text, err := Generate(ctx, prompt, p.Model)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// NormalizeTarget issues the resolver's last-resort normalization query.
func (p *Planner) NormalizeTarget(ctx context.Context, rawTarget, userCommand string) (string, error) {
	return Generate(ctx, buildNormalizePrompt(rawTarget, userCommand), p.Model)
}

// Respond produces a short conversational reply, used when a command could
// not be executed as actions.
func (p *Planner) Respond(ctx context.Context, userCommand string) (string, error) {
	var sb strings.Builder
	sb.WriteString("You are Vega, a helpful desktop assistant. Keep responses SHORT (1-2 sentences).\n")
	sb.WriteString("Do not include reasoning or commentary, only the answer.\n\n")
	sb.WriteString(fmt.Sprintf("User: %s\nVega: ", userCommand))
	return Generate(ctx, sb.String(), p.Model)
}
