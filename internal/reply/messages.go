package reply

import (
	"fmt"

	"gallery-assistant/internal/repository"
)

const (
	CancelledText     = "Ok, I cancelled your request. Your bids were not modified."
	UnrecognizedText  = "Sorry, I did not understand your response."
	UnverifiedMinText = "Error: cannot verify minimum bid amount."
)

func InvalidArtworkIDText(raw string) string {
	return fmt.Sprintf("Sorry, %s is not a valid artwork ID code.", raw)
}

func InvalidArtworkIDHintText(raw string) string {
	return fmt.Sprintf("Sorry, %s is not a valid artwork ID code. Make sure you use capital letters (e.g. ABC123 or WEB563).", raw)
}

func ArtworkNotFoundText(artworkID string) string {
	return fmt.Sprintf("Sorry, no artwork with ID code %s exists.", artworkID)
}

func NotAnIntegerText(raw string) string {
	return fmt.Sprintf("Sorry, %s is not a valid bid amount.", raw)
}

func BelowMinimumText(value, minBid int64) string {
	return fmt.Sprintf("Sorry, %d is less than the minimum bid amount of %d.", value, minBid)
}

// OutcomeText renders the result of a bid modification for the user
func OutcomeText(userName, artworkID string, value int64, outcome repository.Outcome) string {
	switch outcome.Kind {
	case repository.OutcomeCreated:
		return fmt.Sprintf("Ok %s, your bid for artwork %s with value %d was successfully created.",
			userName, artworkID, outcome.NewValue)
	case repository.OutcomeUpdated:
		return fmt.Sprintf("Ok %s, your bid for artwork %s was successfully updated with the new value %d.",
			userName, artworkID, outcome.NewValue)
	case repository.OutcomeRejectedBelowMinimum:
		return fmt.Sprintf("Sorry %s, I could not save your bid with value %d since the minimum bid for artwork %s is %d.",
			userName, value, artworkID, outcome.MinBid)
	case repository.OutcomeRejectedMissingEntity:
		return fmt.Sprintf("An error occurred: either the user %s or the artwork %s does not exist.", userName, artworkID)
	case repository.OutcomeRejectedNoExistingBid:
		return fmt.Sprintf("An error occurred: there is no bid for user %s and artwork %s currently in the database.",
			userName, artworkID)
	default:
		return fmt.Sprintf("An error occurred while modifying your bid for artwork %s.", artworkID)
	}
}
