package conversation

import "fmt"

// Every user-facing string of the studio lives here.

func LineWelcome(model string, offline bool) string {
	if offline {
		return "Recipe Studio (offline). Type a dish idea and press enter."
	}
	return fmt.Sprintf("Recipe Studio using %s. Type a dish idea and press enter.", model)
}

func LineBye() string {
	return "Bye."
}

func LineEmptyIdea() string {
	return "Please enter a recipe idea."
}

func LineBusy() string {
	return "Still cooking up the last one. Hang on."
}

func LineRecovered() string {
	return "Recovered from an error; showing a stable recipe."
}

func LineModelUnavailable() string {
	return "Model unavailable; built a recipe from your idea instead."
}

func LineNothingToCopy() string {
	return "No recipe to copy."
}

func LineNothingToShow() string {
	return "No recipe yet. Type an idea to generate one."
}

func LineCopied(title string) string {
	return fmt.Sprintf("Copied %q to the clipboard.", title)
}

func LineCopyFailed(err error) string {
	return fmt.Sprintf("Could not copy: %v", err)
}

func LineReset() string {
	return "Cleared. Type a new idea."
}

func LineHelp() string {
	return `Commands:
  <idea>              generate a recipe for the idea
  generate <idea>     same (also: gen, make)
  show                print the current recipe again
  copy                copy the current recipe as Markdown
  reset               clear the current recipe
  help                this message
  quit                exit`
}
