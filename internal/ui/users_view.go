package ui

import (
	"context"
	"errors"
	"strings"

	"hamgaman/internal/nav"
	"hamgaman/internal/roster"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Editable fields of a user row, in tab order.
const (
	userFieldName = iota
	userFieldEmail
	userFieldRole
	userFieldCount
)

// UsersView is the users page: a table of roster rows with inline editing.
type UsersView struct {
	roster *roster.Roster
	ctx    context.Context
	table  table.Model
	width  int
	height int

	// inline edit state
	editing bool
	editID  string
	isNew   bool
	field   int
	inputs  [2]textinput.Model
	role    roster.Role
}

// Ensure UsersView implements View.
var _ View = (*UsersView)(nil)

// NewUsersView creates the users page over r.
func NewUsersView(ctx context.Context, r *roster.Roster) *UsersView {
	t := table.New(
		table.WithColumns(userColumns(60)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(NewTableStyles())

	v := &UsersView{roster: r, ctx: ctx, table: t}
	for i := range v.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 120
		v.inputs[i] = ti
	}
	v.inputs[userFieldName].Placeholder = "نام"
	v.inputs[userFieldEmail].Placeholder = "ایمیل"
	v.refresh()
	return v
}

func userColumns(width int) []table.Column {
	// name and email share what the role column leaves.
	roleW := 10
	rest := max(width-roleW-6, 20)
	return []table.Column{
		{Title: "نام", Width: rest * 2 / 5},
		{Title: "ایمیل", Width: rest - rest*2/5},
		{Title: "نقش", Width: roleW},
	}
}

func (v *UsersView) refresh() {
	users := v.roster.Users()
	rows := make([]table.Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, table.Row{u.Name, u.Email, u.Role.Label()})
	}
	v.table.SetRows(rows)
	if c := v.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		v.table.SetCursor(len(rows) - 1)
	}
}

// Selected returns the user under the cursor.
func (v *UsersView) Selected() (roster.User, bool) {
	users := v.roster.Users()
	i := v.table.Cursor()
	if i < 0 || i >= len(users) {
		return roster.User{}, false
	}
	return users[i], true
}

// Editing reports whether a row is being edited, and which one.
func (v *UsersView) Editing() (string, bool) {
	return v.editID, v.editing
}

// CapturesInput reports whether keys go to a text field.
func (v *UsersView) CapturesInput() bool {
	return v.editing
}

// SetSize fits the table into the content area.
func (v *UsersView) SetSize(width, height int) {
	v.width, v.height = width, height
	v.table.SetColumns(userColumns(width))
	v.table.SetWidth(width)
	v.table.SetHeight(max(height-6, 3))
	for i := range v.inputs {
		v.inputs[i].Width = max(width/3, 12)
	}
}

// Delete removes a confirmed row.
func (v *UsersView) Delete(id string) {
	if v.editing && v.editID == id {
		v.stopEdit()
	}
	v.roster.Delete(v.ctx, id)
	v.refresh()
}

// Init implements View.
func (v *UsersView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *UsersView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if v.editing {
			return v, v.updateEdit(msg)
		}
		switch msg.String() {
		case "a", "+":
			u := v.roster.Add(v.ctx)
			v.refresh()
			v.table.SetCursor(0)
			v.startEdit(u, true)
			return v, textinput.Blink
		case "e", "enter":
			if u, ok := v.Selected(); ok {
				v.startEdit(u, false)
				return v, textinput.Blink
			}
			return v, nil
		case "d", "delete":
			if u, ok := v.Selected(); ok {
				return v, func() tea.Msg { return ConfirmDeleteUserMsg{User: u} }
			}
			return v, nil
		}
	}
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

func (v *UsersView) startEdit(u roster.User, isNew bool) {
	v.editing = true
	v.editID = u.ID
	v.isNew = isNew
	v.role = u.Role
	v.inputs[userFieldName].SetValue(u.Name)
	v.inputs[userFieldEmail].SetValue(u.Email)
	v.focusField(userFieldName)
}

func (v *UsersView) stopEdit() {
	v.editing = false
	v.editID = ""
	v.isNew = false
	for i := range v.inputs {
		v.inputs[i].Blur()
	}
}

func (v *UsersView) focusField(f int) {
	v.field = f
	for i := range v.inputs {
		if i == f {
			v.inputs[i].Focus()
		} else {
			v.inputs[i].Blur()
		}
	}
}

func (v *UsersView) updateEdit(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		// A row added and never saved is dropped again.
		if v.isNew {
			v.roster.Delete(v.ctx, v.editID)
		}
		v.stopEdit()
		v.refresh()
		return nil
	case "enter":
		return v.save()
	case "tab":
		v.focusField((v.field + 1) % userFieldCount)
		return nil
	case "shift+tab":
		v.focusField((v.field + userFieldCount - 1) % userFieldCount)
		return nil
	}
	if v.field == userFieldRole {
		switch msg.String() {
		case " ", "left", "right", "h", "l":
			v.role = v.role.Next()
		}
		return nil
	}
	var cmd tea.Cmd
	v.inputs[v.field], cmd = v.inputs[v.field].Update(msg)
	return cmd
}

func (v *UsersView) save() tea.Cmd {
	name := strings.TrimSpace(v.inputs[userFieldName].Value())
	email := strings.TrimSpace(v.inputs[userFieldEmail].Value())
	role := v.role
	err := v.roster.Save(v.ctx, v.editID, roster.Update{Name: &name, Email: &email, Role: &role})
	if err != nil {
		text := err.Error()
		var verr *roster.ValidationError
		if errors.As(err, &verr) {
			text = verr.Message()
		}
		return func() tea.Msg { return nav.NoticeMsg{Text: text, Err: err} }
	}
	v.stopEdit()
	v.refresh()
	return nil
}

// View implements View.
func (v *UsersView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("مدیریت کاربران") + "\n\n")
	if v.roster.Len() == 0 && !v.editing {
		b.WriteString(Styles.Empty.Render("کاربری وجود ندارد") + "\n")
	} else {
		b.WriteString(v.table.View() + "\n")
	}
	if v.editing {
		b.WriteString("\n" + v.editView() + "\n")
		b.WriteString(Styles.Hint.Render("Tab: فیلد بعدی  Enter: ذخیره  Esc: انصراف"))
	} else {
		b.WriteString("\n" + Styles.Hint.Render("a: افزودن  e: ویرایش  d: حذف"))
	}
	return b.String()
}

func (v *UsersView) editView() string {
	label := func(f int, s string) string {
		if v.field == f {
			return Styles.Selected.Render(s)
		}
		return Styles.Muted.Render(s)
	}
	role := "‹ " + v.role.Label() + " ›"
	if v.field == userFieldRole {
		role = Styles.Selected.Render(role)
	}
	parts := []string{
		label(userFieldName, "نام: ") + v.inputs[userFieldName].View(),
		label(userFieldEmail, "ایمیل: ") + v.inputs[userFieldEmail].View(),
		label(userFieldRole, "نقش: ") + role,
	}
	return strings.Join(parts, "   ")
}
