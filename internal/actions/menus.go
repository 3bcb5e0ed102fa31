package actions

import (
	"context"

	"vigit.dev/vigit/internal/menu"
	"vigit.dev/vigit/internal/runtime"
	"vigit.dev/vigit/internal/tui"
)

// Handler is a menu leaf: precondition, input, execution.
type Handler func(ctx context.Context, c *runtime.Context) error

// Menus builds the menu tree for one Context.
type Menus struct {
	c *runtime.Context
	d *menu.Dispatcher
}

// NewMenus creates the menu tree. Errors are printed with Report and the
// screen is cleared whenever a menu is entered.
func NewMenus(c *runtime.Context) *Menus {
	d := menu.NewDispatcher(DefaultLabels, c.Prompter)
	d.BeforeRender = c.Screen.Clear
	d.OnError = func(ctx context.Context, err error) {
		Report(ctx, c, err)
	}
	return &Menus{c: c, d: d}
}

// Dispatcher returns the dispatcher the menus run on.
func (m *Menus) Dispatcher() *menu.Dispatcher {
	return m.d
}

// Run shows the main menu until the user quits or ctx is canceled.
func (m *Menus) Run(ctx context.Context) error {
	_, err := m.d.Run(ctx, m.Main())
	return err
}

func (m *Menus) leaf(id menu.ID, fn Handler) menu.Item {
	return menu.Item{ID: id, Action: func(ctx context.Context) (menu.Signal, error) {
		return menu.Stay, fn(ctx, m.c)
	}}
}

// sub opens child once checks pass. A failing check is reported and the
// current menu is redrawn.
func (m *Menus) sub(id menu.ID, child func() *menu.Node, checks ...check) menu.Item {
	open := m.d.Submenu(child)
	return menu.Item{ID: id, Action: func(ctx context.Context) (menu.Signal, error) {
		if err := require(ctx, m.c, checks...); err != nil {
			return menu.Stay, err
		}
		return open(ctx)
	}}
}

func (m *Menus) node(title string, items ...menu.Item) *menu.Node {
	return &menu.Node{Title: tui.Title(title), Header: m.header, Items: items}
}

// header re-probes the current branch on every redraw.
func (m *Menus) header(ctx context.Context) string {
	if !m.c.Probes.IsRepository(ctx) {
		return ""
	}
	branch := m.c.Probes.CurrentBranch(ctx)
	if branch == "" {
		return ""
	}
	return tui.CurrentBranchLine(branch)
}

// Main is the root menu.
func (m *Menus) Main() *menu.Node {
	return m.node("Main menu:",
		m.sub(WorkInMainID, m.WorkInMain, mainGate),
		m.sub(WorkInBranchesID, m.WorkInBranches, inRepository, hasCommits),
		m.sub(AddID, m.Add, inRepository),
		m.sub(ShowID, m.Show, inRepository),
		m.leaf(SeeLogID, SeeLogAction),
		m.sub(ConfigurationID, m.Configuration),
		m.sub(QuickActionsID, m.QuickActions),
	)
}

// WorkInMain holds operations on the main branch and the repository itself.
func (m *Menus) WorkInMain() *menu.Node {
	return m.node("Work in main:",
		m.sub(MainLocalID, m.MainLocal),
		m.sub(MainRemoteID, m.MainRemote),
	)
}

func (m *Menus) MainLocal() *menu.Node {
	return m.node("Local:",
		m.leaf(AddLocalRepoID, AddLocalRepoAction),
		m.leaf(AddBareRepoID, AddBareRepoAction),
		m.leaf(CommitLocalID, CommitLocalAction),
		m.leaf(DeleteLocalRepoID, DeleteLocalRepoAction),
	)
}

func (m *Menus) MainRemote() *menu.Node {
	return m.node("Remote:",
		m.leaf(AddRemoteRepoID, AddRemoteRepoAction),
		m.leaf(JoinLocalToRemoteID, JoinLocalToRemoteAction),
		m.leaf(CommitAndPushID, CommitAndPushAction),
		m.leaf(ForkRemoteID, ForkRemoteAction),
		m.leaf(YankFromRemoteID, YankFromRemoteAction),
		m.leaf(SeeRemoteReposID, SeeRemoteReposAction),
		m.leaf(DeleteRemoteRepoID, DeleteRemoteRepoAction),
	)
}

// WorkInBranches holds branch operations. Entering it requires a first commit.
func (m *Menus) WorkInBranches() *menu.Node {
	return m.node("Work in branches:",
		m.sub(BranchLocalID, m.BranchLocal),
		m.sub(BranchLocalToRemoteID, m.BranchLocalToRemote, connected),
		m.sub(BranchRemoteToLocalID, m.BranchRemoteToLocal, connected),
		m.sub(BranchManageID, m.BranchManage),
		m.sub(BranchAdvancedID, m.BranchAdvanced),
	)
}

func (m *Menus) BranchLocal() *menu.Node {
	return m.node("Local branches:",
		m.leaf(SeeLocalBranchesID, SeeLocalBranchesAction),
		m.leaf(AddLocalBranchID, AddLocalBranchAction),
		m.leaf(CommitToBranchID, CommitToBranchAction),
		m.leaf(GoToBranchID, GoToBranchAction),
		m.leaf(GoToMainID, GoToMainAction),
	)
}

func (m *Menus) BranchLocalToRemote() *menu.Node {
	return m.node("Local to remote:",
		m.leaf(SeeRemoteBranchesID, SeeRemoteBranchesAction),
		m.leaf(JoinBranchToRemoteID, JoinBranchToRemoteAction),
		m.leaf(PushBranchID, PushBranchAction),
		m.leaf(CommitAndPushBranchID, CommitAndPushBranchAction),
	)
}

func (m *Menus) BranchRemoteToLocal() *menu.Node {
	return m.node("Remote to local:",
		m.leaf(TrackRemoteBranchID, TrackRemoteBranchAction),
		m.leaf(YankRemoteBranchID, YankRemoteBranchAction),
	)
}

func (m *Menus) BranchManage() *menu.Node {
	return m.node("Manage branches:",
		m.leaf(MergeWithMainID, MergeWithMainAction),
		m.leaf(DeleteLocalBranchID, DeleteLocalBranchAction),
		m.leaf(DeleteRemoteBranchID, DeleteRemoteBranchAction),
	)
}

func (m *Menus) BranchAdvanced() *menu.Node {
	return m.node("Advanced operations:",
		m.leaf(ResetID, ResetAction),
		m.leaf(CleanID, CleanAction),
		m.leaf(ForcePushID, ForcePushAction),
		m.sub(StashID, m.Stash),
		m.leaf(CherryPickID, CherryPickAction),
		m.leaf(InteractiveRebaseID, InteractiveRebaseAction),
	)
}

func (m *Menus) Stash() *menu.Node {
	return m.node("Stash:",
		m.leaf(StashSaveID, StashSaveAction),
		m.leaf(StashListID, StashListAction),
		m.leaf(StashApplyID, StashApplyAction),
		m.leaf(StashPopID, StashPopAction),
		m.leaf(StashDropID, StashDropAction),
		m.leaf(StashClearID, StashClearAction),
	)
}

// Add stages files.
func (m *Menus) Add() *menu.Node {
	return m.node("Add:",
		m.leaf(AddAllID, AddAllAction),
		m.leaf(AddSelectedID, AddSelectedAction),
	)
}

// Show displays repository state.
func (m *Menus) Show() *menu.Node {
	return m.node("Show:",
		m.leaf(GeneralViewID, GeneralViewAction),
		m.leaf(StatusID, StatusAction),
		m.leaf(HistoryID, HistoryAction),
	)
}

func (m *Menus) Configuration() *menu.Node {
	return m.node("Configuration:",
		m.leaf(SeeCredentialsID, SeeCredentialsAction),
		m.leaf(UserNameID, UserNameAction),
		m.leaf(UserEmailID, UserEmailAction),
		m.leaf(GitHubTokenID, GitHubTokenAction),
	)
}

// QuickActions gathers the most common handlers on one screen.
func (m *Menus) QuickActions() *menu.Node {
	return m.node("Quick actions:",
		m.leaf(QuickAddLocalRepoID, AddLocalRepoAction),
		m.leaf(QuickCommitLocalID, CommitLocalAction),
		m.leaf(QuickCommitAndPushID, CommitAndPushAction),
		m.leaf(QuickCommitAndPushBranchID, CommitAndPushBranchAction),
		m.leaf(QuickMergeWithMainID, MergeWithMainAction),
		m.leaf(QuickGoToBranchID, GoToBranchAction),
		m.leaf(QuickGoToMainID, GoToMainAction),
	)
}
