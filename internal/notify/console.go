package notify

import "log"

// ConsoleNotifier writes notifications to the process log. Used in local
// runs where no SendGrid key is configured.
type ConsoleNotifier struct{}

func (ConsoleNotifier) NotifyFailure(errText string) {
	log.Printf("moderation service failure: %s", errText)
}
