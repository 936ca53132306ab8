package usecase

import "memos-launcher/internal/launcher"

const (
	// listPageSize is the page requested when the query has no search text.
	listPageSize = 20

	// commandCreate is the launcher command that switches to create mode.
	commandCreate = "create"

	// editFormContentKey is the single field of the edit form.
	editFormContentKey = "content"
)

// Translation keys for all user-facing text. Internal diagnostics stay
// untranslated.
const (
	i18nUnconfiguredTitle    = "unconfigured_title"
	i18nUnconfiguredSubtitle = "unconfigured_subtitle"
	i18nCreateTitle          = "create_title"
	i18nCreateSubtitle       = "create_subtitle"
	i18nCreateHelpTitle      = "create_help_title"
	i18nCreateHelpSubtitle   = "create_help_subtitle"
	i18nCreateExampleTitle   = "create_example_title"
	i18nCreateExampleSub     = "create_example_subtitle"
	i18nNoMemosTitle         = "no_memos_title"
	i18nNoMemosSubtitle      = "no_memos_subtitle"
	i18nListErrorTitle       = "list_error_title"
	i18nSearchErrorTitle     = "search_error_title"
	i18nNoMatchTitle         = "no_match_title"
	i18nNoMatchSubtitle      = "no_match_subtitle"
	i18nActionCreate         = "action_create"
	i18nActionOpen           = "action_open"
	i18nActionCopy           = "action_copy"
	i18nActionEdit           = "action_edit"
	i18nActionDelete         = "action_delete"
	i18nEditFormLabel        = "edit_form_label"
	i18nNotifyCreated        = "notify_created"
	i18nNotifyUpdated        = "notify_updated"
	i18nNotifyDeleted        = "notify_deleted"
)

var (
	iconApp     = launcher.Icon{ImageType: "relative", ImageData: "images/app.png"}
	iconWarning = launcher.Icon{ImageType: "emoji", ImageData: "⚠️"}
)
