package server

import "html/template"

// The gateway's chrome is deliberately small: a login form per portal, a
// dashboard shell per portal, and the admin logout confirmation.

var loginTmpl = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Title}} — Sign In</title></head>
<body>
<h1>{{.Title}}</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="{{.Action}}">
  <label>{{.IdentifierLabel}} <input type="text" name="{{.IdentifierField}}" value="{{.Identifier}}"></label>
  <label>Password <input type="password" name="password"></label>
  <button type="submit">Sign In</button>
</form>
</body>
</html>
`))

type loginPageData struct {
	Title           string
	Action          string
	IdentifierLabel string
	IdentifierField string
	Identifier      string
	Error           string
}

var adminDashboardTmpl = template.Must(template.New("admin_dashboard").Parse(`<!DOCTYPE html>
<html>
<head><title>Back Office</title></head>
<body>
<header class="topbar">
  <span>{{.Name}}</span>
  <a href="/admin/logout">Logout</a>
</header>
<main>
  <p>Signed in as {{.Name}} ({{.Email}})</p>
</main>
</body>
</html>
`))

type adminDashboardData struct {
	Name  string
	Email string
	Phone string
}

var logoutConfirmTmpl = template.Must(template.New("logout_confirm").Parse(`<!DOCTYPE html>
<html>
<head><title>Confirm Logout</title></head>
<body>
<p>Are you sure you want to log out?</p>
<form method="post" action="/admin/logout">
  <button type="submit">Log out</button>
  <a href="/admin/dashboard">Cancel</a>
</form>
</body>
</html>
`))

var shopDashboardTmpl = template.Must(template.New("shop_dashboard").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Name}}</title></head>
<body>
<header>
  {{if .Logo}}<img src="{{.Logo}}" alt="logo">{{end}}
  <span>{{.Name}}</span>
  <form method="post" action="/shop/logout"><button type="submit">Logout</button></form>
</header>
<main>
  <p>Welcome back{{if .OwnerName}}, {{.OwnerName}}{{end}}.</p>
</main>
</body>
</html>
`))

type shopDashboardData struct {
	Name      string
	OwnerName string
	Logo      string
}
