package actions

import "vigit.dev/vigit/internal/menu"

// Menu entry identifiers. The wording of every entry lives in DefaultLabels.
const (
	// Main menu
	WorkInMainID     menu.ID = "main"
	WorkInBranchesID menu.ID = "branches"
	AddID            menu.ID = "add"
	ShowID           menu.ID = "show"
	SeeLogID         menu.ID = "log"
	ConfigurationID  menu.ID = "configuration"
	QuickActionsID   menu.ID = "quick"

	// Work in Main
	MainLocalID  menu.ID = "main.local"
	MainRemoteID menu.ID = "main.remote"

	AddLocalRepoID    menu.ID = "main.local.init"
	AddBareRepoID     menu.ID = "main.local.bare"
	CommitLocalID     menu.ID = "main.local.commit"
	DeleteLocalRepoID menu.ID = "main.local.delete"

	AddRemoteRepoID     menu.ID = "main.remote.create"
	JoinLocalToRemoteID menu.ID = "main.remote.link"
	CommitAndPushID     menu.ID = "main.remote.push"
	ForkRemoteID        menu.ID = "main.remote.clone"
	YankFromRemoteID    menu.ID = "main.remote.pull"
	SeeRemoteReposID    menu.ID = "main.remote.list"
	DeleteRemoteRepoID  menu.ID = "main.remote.delete"

	// Work in Branches
	BranchLocalID         menu.ID = "branches.local"
	BranchLocalToRemoteID menu.ID = "branches.ltr"
	BranchRemoteToLocalID menu.ID = "branches.rtl"
	BranchManageID        menu.ID = "branches.manage"
	BranchAdvancedID      menu.ID = "branches.advanced"

	SeeLocalBranchesID    menu.ID = "branches.local.list"
	AddLocalBranchID      menu.ID = "branches.local.create"
	CommitToBranchID      menu.ID = "branches.local.commit"
	GoToBranchID          menu.ID = "branches.local.checkout"
	GoToMainID            menu.ID = "branches.local.main"
	SeeRemoteBranchesID   menu.ID = "branches.ltr.list"
	JoinBranchToRemoteID  menu.ID = "branches.ltr.link"
	PushBranchID          menu.ID = "branches.ltr.push"
	CommitAndPushBranchID menu.ID = "branches.ltr.commitpush"
	TrackRemoteBranchID   menu.ID = "branches.rtl.track"
	YankRemoteBranchID    menu.ID = "branches.rtl.pull"
	MergeWithMainID       menu.ID = "branches.manage.merge"
	DeleteLocalBranchID   menu.ID = "branches.manage.delete"
	DeleteRemoteBranchID  menu.ID = "branches.manage.deleteremote"

	ResetID             menu.ID = "advanced.reset"
	CleanID             menu.ID = "advanced.clean"
	ForcePushID         menu.ID = "advanced.forcepush"
	StashID             menu.ID = "advanced.stash"
	CherryPickID        menu.ID = "advanced.cherrypick"
	InteractiveRebaseID menu.ID = "advanced.rebase"

	StashSaveID  menu.ID = "stash.save"
	StashListID  menu.ID = "stash.list"
	StashApplyID menu.ID = "stash.apply"
	StashPopID   menu.ID = "stash.pop"
	StashDropID  menu.ID = "stash.drop"
	StashClearID menu.ID = "stash.clear"

	// Quick Actions
	QuickAddLocalRepoID        menu.ID = "quick.init"
	QuickCommitLocalID         menu.ID = "quick.commit"
	QuickCommitAndPushID       menu.ID = "quick.push"
	QuickCommitAndPushBranchID menu.ID = "quick.branchpush"
	QuickMergeWithMainID       menu.ID = "quick.merge"
	QuickGoToBranchID          menu.ID = "quick.checkout"
	QuickGoToMainID            menu.ID = "quick.main"

	// Add
	AddAllID      menu.ID = "add.all"
	AddSelectedID menu.ID = "add.selected"

	// Show
	GeneralViewID menu.ID = "show.general"
	StatusID      menu.ID = "show.status"
	HistoryID     menu.ID = "show.history"

	// Configuration
	SeeCredentialsID menu.ID = "config.show"
	UserNameID       menu.ID = "config.name"
	UserEmailID      menu.ID = "config.email"
	GitHubTokenID    menu.ID = "config.token"
)

// DefaultLabels is the single table of menu wording and selection keys.
// Keys only need to be unique within one screen; x and q are reserved.
var DefaultLabels = menu.Labels{
	WorkInMainID:     {Key: "m", Text: "Work in Main"},
	WorkInBranchesID: {Key: "b", Text: "Work in Branches"},
	AddID:            {Key: "a", Text: "Add"},
	ShowID:           {Key: "s", Text: "Show"},
	SeeLogID:         {Key: "l", Text: "See Log"},
	ConfigurationID:  {Key: "c", Text: "Configuration"},
	QuickActionsID:   {Key: "k", Text: "Quick Actions"},

	MainLocalID:  {Key: "l", Text: "Local"},
	MainRemoteID: {Key: "r", Text: "Remote"},

	AddLocalRepoID:    {Key: "a", Text: "Add a Local Repo"},
	AddBareRepoID:     {Key: "b", Text: "Add a Bare Repo"},
	CommitLocalID:     {Key: "c", Text: "Commit to Local Repo"},
	DeleteLocalRepoID: {Key: "d", Text: "Delete Local Repo"},

	AddRemoteRepoID:     {Key: "a", Text: "Add Remote Repo"},
	JoinLocalToRemoteID: {Key: "j", Text: "Join Local to Remote"},
	CommitAndPushID:     {Key: "p", Text: "Commit & Push"},
	ForkRemoteID:        {Key: "f", Text: "Fork Remote to Local"},
	YankFromRemoteID:    {Key: "y", Text: "Yank Changes from Remote"},
	SeeRemoteReposID:    {Key: "s", Text: "See Remote Repos"},
	DeleteRemoteRepoID:  {Key: "d", Text: "Delete Remote Repo"},

	BranchLocalID:         {Key: "l", Text: "Local"},
	BranchLocalToRemoteID: {Key: "t", Text: "Local to Remote"},
	BranchRemoteToLocalID: {Key: "r", Text: "Remote to Local"},
	BranchManageID:        {Key: "m", Text: "Manage"},
	BranchAdvancedID:      {Key: "a", Text: "Advanced"},

	SeeLocalBranchesID:    {Key: "s", Text: "See Local Branches"},
	AddLocalBranchID:      {Key: "a", Text: "Add a Local Branch"},
	CommitToBranchID:      {Key: "c", Text: "Commit to Current Branch"},
	GoToBranchID:          {Key: "g", Text: "Go to Branch"},
	GoToMainID:            {Key: "m", Text: "Go to Main"},
	SeeRemoteBranchesID:   {Key: "s", Text: "See Remote Branches"},
	JoinBranchToRemoteID:  {Key: "j", Text: "Join Local Branch to Remote"},
	PushBranchID:          {Key: "p", Text: "Push Changes to Remote Branch"},
	CommitAndPushBranchID: {Key: "c", Text: "Commit & Push in Branch"},
	TrackRemoteBranchID:   {Key: "j", Text: "Join Remote Branch to Local"},
	YankRemoteBranchID:    {Key: "y", Text: "Yank Remote Branch Changes to Local"},
	MergeWithMainID:       {Key: "m", Text: "Merge One Branch with Main"},
	DeleteLocalBranchID:   {Key: "d", Text: "Delete Local Branch"},
	DeleteRemoteBranchID:  {Key: "r", Text: "Delete Remote Branch"},

	ResetID:             {Key: "r", Text: "Reset"},
	CleanID:             {Key: "c", Text: "Clean"},
	ForcePushID:         {Key: "f", Text: "Force Push"},
	StashID:             {Key: "s", Text: "Stash"},
	CherryPickID:        {Key: "p", Text: "Cherry-pick"},
	InteractiveRebaseID: {Key: "i", Text: "Interactive Rebase"},

	StashSaveID:  {Key: "s", Text: "Save Changes"},
	StashListID:  {Key: "l", Text: "List Stashes"},
	StashApplyID: {Key: "a", Text: "Apply a Stash"},
	StashPopID:   {Key: "p", Text: "Pop a Stash"},
	StashDropID:  {Key: "d", Text: "Drop a Stash"},
	StashClearID: {Key: "c", Text: "Clear All Stashes"},

	QuickAddLocalRepoID:        {Key: "a", Text: "Add a Local Repo"},
	QuickCommitLocalID:         {Key: "c", Text: "Commit to Local Repo"},
	QuickCommitAndPushID:       {Key: "p", Text: "Commit & Push"},
	QuickCommitAndPushBranchID: {Key: "b", Text: "Commit & Push in Branch"},
	QuickMergeWithMainID:       {Key: "o", Text: "Merge One Branch with Main"},
	QuickGoToBranchID:          {Key: "g", Text: "Go to Branch"},
	QuickGoToMainID:            {Key: "m", Text: "Go to Main"},

	AddAllID:      {Key: "a", Text: "Add All Files"},
	AddSelectedID: {Key: "s", Text: "Add Selected Files"},

	GeneralViewID: {Key: "g", Text: "General View"},
	StatusID:      {Key: "s", Text: "Status"},
	HistoryID:     {Key: "h", Text: "History"},

	SeeCredentialsID: {Key: "s", Text: "See Credentials"},
	UserNameID:       {Key: "n", Text: "Name"},
	UserEmailID:      {Key: "e", Text: "Email"},
	GitHubTokenID:    {Key: "t", Text: "GitHub Token"},
}

// menuPath renders the labels of ids as a breadcrumb, e.g. "Work in Main > Local".
func menuPath(ids ...menu.ID) string {
	path := ""
	for i, id := range ids {
		if i > 0 {
			path += " > "
		}
		path += DefaultLabels.Text(id)
	}
	return path
}
