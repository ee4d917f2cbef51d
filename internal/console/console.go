package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"safetytips/internal/entity"
	"safetytips/internal/service"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
)

const timeLayout = "2006-01-02 15:04:05"

// Console is a line-oriented front end over the service: a login screen,
// a user dashboard and an admin dashboard.
type Console struct {
	svc     *service.Service
	prompt  *prompter
	out     io.Writer
	session *service.Session
}

// New creates a console reading commands from in and writing to out.
func New(svc *service.Service, in io.Reader, out io.Writer) *Console {
	return &Console{
		svc:    svc,
		prompt: newPrompter(in, out),
		out:    out,
	}
}

// Run reads and executes commands until "exit" or end of input. An open
// session is logged out on the way out.
func (c *Console) Run(ctx context.Context) error {
	defer c.logout(ctx)

	c.println("Safety Tips. Type 'help' for commands.")
	for {
		line, err := c.prompt.text(c.status() + "> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.println()
				return nil
			}
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := strings.ToLower(fields[0]), fields[1:]
		if cmd == "exit" || cmd == "quit" {
			c.println("Bye!")
			return nil
		}
		c.dispatch(ctx, cmd, args)
	}
}

func (c *Console) status() string {
	if c.session == nil {
		return "safety"
	}
	u := c.session.User()
	if u == nil {
		return "safety"
	}
	if u.IsAdmin {
		return fmt.Sprintf("safety [%s, admin]", u.Username)
	}
	return fmt.Sprintf("safety [%s]", u.Username)
}

func (c *Console) dispatch(ctx context.Context, cmd string, args []string) {
	if cmd == "help" {
		c.help()
		return
	}

	if c.session == nil {
		switch cmd {
		case "login":
			c.login(ctx)
		case "register":
			c.register(ctx)
		default:
			c.unknown(cmd)
		}
		return
	}

	switch cmd {
	case "search", "tips":
		c.search(ctx, strings.Join(args, " "))
	case "show":
		c.show(ctx, args)
	case "passwd":
		c.changePassword(ctx)
	case "logout":
		c.logout(ctx)
		c.println("Logged out.")
	default:
		if !c.session.IsAdmin() {
			c.unknown(cmd)
			return
		}
		c.dispatchAdmin(ctx, cmd, args)
	}
}

func (c *Console) dispatchAdmin(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "users":
		c.listUsers(ctx)
	case "adduser":
		c.addUser(ctx)
	case "edituser":
		c.editUser(ctx, args)
	case "rmuser":
		c.removeUser(ctx, args)
	case "addtip":
		c.addTip(ctx)
	case "edittip":
		c.editTip(ctx, args)
	case "rmtip":
		c.removeTip(ctx, args)
	case "activities":
		c.listActivities(ctx)
	default:
		c.unknown(cmd)
	}
}

func (c *Console) help() {
	switch {
	case c.session == nil:
		c.println("Commands: login, register, help, exit")
	case c.session.IsAdmin():
		c.println("Commands: search [text], show <id>, passwd, logout, exit")
		c.println("Admin:    users, adduser, edituser <id>, rmuser <id>, addtip, edittip <id>, rmtip <id>, activities")
	default:
		c.println("Commands: search [text], show <id>, passwd, logout, exit")
	}
}

func (c *Console) unknown(cmd string) {
	c.println("Unknown command:", cmd, "(type 'help')")
}

func (c *Console) login(ctx context.Context) {
	username, err := c.prompt.text("Username: ")
	if err != nil {
		return
	}
	password, err := c.prompt.secret("Password: ")
	if err != nil {
		return
	}
	if username == "" || password == "" {
		c.println("Please enter both username and password.")
		return
	}

	session, err := c.svc.Login(ctx, username, password)
	if err != nil {
		c.fail(err)
		return
	}
	c.session = session
	if session.IsAdmin() {
		c.println("Welcome, Admin!")
	} else {
		c.println(fmt.Sprintf("Welcome, %s!", session.User().Username))
	}
}

func (c *Console) register(ctx context.Context) {
	username, err := c.prompt.text("Username: ")
	if err != nil {
		return
	}
	password, confirmed := c.newPassword("Password: ")
	if !confirmed {
		return
	}
	if username == "" {
		c.println("Please fill in all fields.")
		return
	}

	if _, err := c.svc.Register(ctx, username, password); err != nil {
		c.fail(err)
		return
	}
	c.println("Registration successful! Please log in.")
}

// newPassword asks for a password twice. It reports false and explains why
// when the answer is empty or the two entries differ.
func (c *Console) newPassword(prompt string) (string, bool) {
	password, err := c.prompt.secret(prompt)
	if err != nil {
		return "", false
	}
	if strings.TrimSpace(password) == "" {
		c.println("Please fill in all fields.")
		return "", false
	}
	confirm, err := c.prompt.secret("Confirm password: ")
	if err != nil {
		return "", false
	}
	if password != confirm {
		c.println("Passwords do not match!")
		return "", false
	}
	return password, true
}

func (c *Console) logout(ctx context.Context) {
	if c.session == nil {
		return
	}
	c.session.Logout(ctx)
	c.session = nil
}

func (c *Console) search(ctx context.Context, query string) {
	standard, err := c.session.Standard()
	if err != nil {
		c.fail(err)
		return
	}
	var q *string
	if query = strings.TrimSpace(query); query != "" {
		q = &query
	}
	tips, err := standard.SearchTips(ctx, q)
	if err != nil {
		c.fail(err)
		return
	}
	if len(tips) == 0 {
		c.println("No safety tips found.")
		return
	}
	for _, tip := range tips {
		c.printTip(tip)
	}
}

func (c *Console) show(ctx context.Context, args []string) {
	id, ok := c.parseID(args)
	if !ok {
		return
	}
	standard, err := c.session.Standard()
	if err != nil {
		c.fail(err)
		return
	}
	tip, err := standard.GetTip(ctx, id)
	if err != nil {
		c.fail(err)
		return
	}
	c.printTip(*tip)
}

func (c *Console) changePassword(ctx context.Context) {
	standard, err := c.session.Standard()
	if err != nil {
		c.fail(err)
		return
	}
	password, ok := c.newPassword("New password: ")
	if !ok {
		return
	}
	if err := standard.ChangePassword(ctx, password); err != nil {
		c.fail(err)
		return
	}
	c.println("Password updated successfully!")
}

func (c *Console) listUsers(ctx context.Context) {
	admin, ok := c.admin()
	if !ok {
		return
	}
	users, err := admin.ListUsers(ctx)
	if err != nil {
		c.fail(err)
		return
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tADMIN\tCREATED")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Username, yesNo(u.IsAdmin), u.CreatedAt.Format(timeLayout))
	}
	_ = w.Flush()
}

func (c *Console) addUser(ctx context.Context) {
	admin, ok := c.admin()
	if !ok {
		return
	}
	username, err := c.prompt.text("Username: ")
	if err != nil {
		return
	}
	password, confirmed := c.newPassword("Password: ")
	if !confirmed {
		return
	}
	answer, err := c.prompt.text("Administrator? (y/N): ")
	if err != nil {
		return
	}
	if username == "" {
		c.println("Please fill in all fields.")
		return
	}

	if _, err := admin.CreateUser(ctx, username, password, isYes(answer)); err != nil {
		c.fail(err)
		return
	}
	c.println("User added successfully!")
}

func (c *Console) editUser(ctx context.Context, args []string) {
	admin, ok := c.admin()
	if !ok {
		return
	}
	id, ok := c.parseID(args)
	if !ok {
		return
	}
	target, err := admin.GetUser(ctx, id)
	if err != nil {
		c.fail(err)
		return
	}

	c.println(fmt.Sprintf("Editing %s (ID %d). Leave a field blank to keep it.", target.Username, target.ID))
	username, err := c.prompt.text("New username: ")
	if err != nil {
		return
	}
	password, err := c.prompt.secret("New password: ")
	if err != nil {
		return
	}
	if password != "" {
		confirm, err := c.prompt.secret("Confirm new password: ")
		if err != nil {
			return
		}
		if password != confirm {
			c.println("Passwords do not match!")
			return
		}
	}

	changes := entity.UserChanges{Username: &username, Password: &password}
	if id != c.session.User().ID {
		answer, err := c.prompt.text(fmt.Sprintf("Administrator? (y/n, blank keeps %s): ", yesNo(target.IsAdmin)))
		if err != nil {
			return
		}
		if answer != "" {
			flag := isYes(answer)
			changes.IsAdmin = &flag
		}
	}
	if changes.IsEmpty() {
		c.println("Nothing to update.")
		return
	}

	updated, err := admin.UpdateUser(ctx, id, changes)
	if err != nil {
		c.fail(err)
		return
	}
	if !updated {
		c.println("Failed to update user.")
		return
	}
	c.println("User updated successfully!")
}

func (c *Console) removeUser(ctx context.Context, args []string) {
	admin, ok := c.admin()
	if !ok {
		return
	}
	id, ok := c.parseID(args)
	if !ok {
		return
	}
	if id == c.session.User().ID {
		c.println("You cannot remove your own account.")
		return
	}
	if !c.prompt.confirm("Are you sure you want to delete this user?") {
		c.println("Deletion cancelled.")
		return
	}

	removed, err := admin.RemoveUser(ctx, id)
	if err != nil {
		c.fail(err)
		return
	}
	if !removed {
		c.println("User not found.")
		return
	}
	c.println("User removed successfully!")
}

func (c *Console) addTip(ctx context.Context) {
	admin, ok := c.admin()
	if !ok {
		return
	}
	title, err := c.prompt.text("Title: ")
	if err != nil {
		return
	}
	content, err := c.prompt.multiline("Content")
	if err != nil {
		return
	}

	tip, err := admin.AddTip(ctx, title, content)
	if err != nil {
		c.fail(err)
		return
	}
	c.println(fmt.Sprintf("Safety tip added successfully! (ID %d)", tip.TipID))
}

func (c *Console) editTip(ctx context.Context, args []string) {
	admin, ok := c.admin()
	if !ok {
		return
	}
	id, ok := c.parseID(args)
	if !ok {
		return
	}
	current, err := admin.GetTip(ctx, id)
	if err != nil {
		c.fail(err)
		return
	}

	c.printTip(*current)
	title, err := c.prompt.text("New title (blank keeps current): ")
	if err != nil {
		return
	}
	if title == "" {
		title = current.Title
	}
	content, err := c.prompt.multiline("New content (blank keeps current)")
	if err != nil {
		return
	}
	if content == "" {
		content = current.Content
	}

	updated, err := admin.UpdateTip(ctx, id, title, content)
	if err != nil {
		c.fail(err)
		return
	}
	if !updated {
		c.println("Failed to update safety tip.")
		return
	}
	c.println("Safety tip updated successfully!")
}

func (c *Console) removeTip(ctx context.Context, args []string) {
	admin, ok := c.admin()
	if !ok {
		return
	}
	id, ok := c.parseID(args)
	if !ok {
		return
	}
	if !c.prompt.confirm("Are you sure you want to delete this tip?") {
		c.println("Deletion cancelled.")
		return
	}

	removed, err := admin.RemoveTip(ctx, id)
	if err != nil {
		c.fail(err)
		return
	}
	if !removed {
		c.println("Safety tip not found.")
		return
	}
	c.println("Safety tip deleted successfully!")
}

func (c *Console) listActivities(ctx context.Context) {
	admin, ok := c.admin()
	if !ok {
		return
	}
	entries, err := admin.ListActivities(ctx)
	if err != nil {
		c.fail(err)
		return
	}
	if len(entries) == 0 {
		c.println("No activities recorded.")
		return
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tUSER\tACTIVITY")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Timestamp.Format(timeLayout), e.Username, e.Activity)
	}
	_ = w.Flush()
}

func (c *Console) admin() (*service.AdminCapabilities, bool) {
	admin, err := c.session.Admin()
	if err != nil {
		c.fail(err)
		return nil, false
	}
	return admin, true
}

func (c *Console) parseID(args []string) (uint, bool) {
	if len(args) == 0 {
		c.println("An ID is required.")
		return 0, false
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil || id == 0 {
		c.println("Invalid ID:", args[0])
		return 0, false
	}
	return uint(id), true
}

func (c *Console) printTip(tip entity.Tip) {
	c.println(fmt.Sprintf("[%d] %s", tip.TipID, tip.Title))
	for _, line := range strings.Split(tip.Content, "\n") {
		c.println("    " + line)
	}
}

// fail prints a user-facing message for err. Store failures are already
// logged by the service.
func (c *Console) fail(err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.println("Invalid username or password!")
	case errors.Is(err, service.ErrDuplicateUsername):
		c.println("Username already exists!")
	case errors.Is(err, service.ErrValidation):
		c.println(strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": "))
	case errors.Is(err, service.ErrNotFound):
		c.println("Not found.")
	case errors.Is(err, service.ErrForbidden):
		c.println("Administrator privileges required.")
	case errors.Is(err, service.ErrLoggedOut):
		c.println("Please log in first.")
	default:
		logrus.WithError(err).Debug("console command failed")
		c.println("Something went wrong. Please try again.")
	}
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true":
		return true
	default:
		return false
	}
}
