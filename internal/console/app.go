package console

import (
	"fmt"

	"github.com/rs/zerolog"

	"hotel-console/internal/config"
	"hotel-console/internal/model"
	"hotel-console/internal/repository"
	"hotel-console/internal/utils"
)

// App bundles the repositories and the signed-in user for the menu
// screens.  Repositories are injected once; no screen constructs
// its own.
type App struct {
	Users       *repository.UserRepo
	Hotels      *repository.HotelRepo
	Rooms       *repository.RoomRepo
	Restaurants *repository.RestaurantRepo
	Bookings    *repository.BookingRepo

	Cfg config.Config
	Log zerolog.Logger

	io      *console
	current *model.User
	running bool
}

// New wires an App over a data directory.
func New(cfg config.Config, logger zerolog.Logger) *App {
	return &App{
		Users:       repository.NewUserRepo(cfg.CollectionPath("users"), cfg.BcryptCost, logger),
		Hotels:      repository.NewHotelRepo(cfg.CollectionPath("hotels"), logger),
		Rooms:       repository.NewRoomRepo(cfg.CollectionPath("rooms"), logger),
		Restaurants: repository.NewRestaurantRepo(cfg.CollectionPath("restaurants"), logger),
		Bookings:    repository.NewBookingRepo(cfg.CollectionPath("bookings"), logger),
		Cfg:         cfg,
		Log:         logger,
		io:          newConsole(),
	}
}

// Load reads every collection once at startup.
func (a *App) Load() error {
	for _, load := range []func() error{
		a.Users.Load, a.Hotels.Load, a.Rooms.Load, a.Restaurants.Load, a.Bookings.Load,
	} {
		if err := load(); err != nil {
			return err
		}
	}
	return nil
}

// Run drives the welcome/login/dashboard loop until the user exits.
func (a *App) Run() {
	a.running = true
	for a.running {
		if a.current == nil {
			switch a.welcome() {
			case 1:
				a.current = a.login()
			case 2:
				a.current = a.register()
			default:
				a.running = false
			}
			continue
		}
		switch a.current.Role {
		case model.RoleAdmin:
			a.dashboardAdmin()
		case model.RoleHotelManager:
			a.dashboardManager()
		default:
			a.dashboardGuest()
		}
	}
}

func (a *App) welcome() int {
	banner("Welcome to HMS")
	fmt.Println("1) Login")
	fmt.Println("2) Register")
	fmt.Println("3) Exit")
	switch a.io.readLine("Select: ") {
	case "1":
		return 1
	case "2":
		return 2
	default:
		return 3
	}
}

func (a *App) logout() { a.current = nil }

func (a *App) login() *model.User {
	banner("Login")
	for tries := 3; tries > 0; tries-- {
		login := a.io.readLine("Login: ")
		pw := a.io.readPassword("Password: ")
		u, ok := a.Users.GetByLogin(login)
		if ok && u.Active && utils.VerifyPassword(u.PasswordHash, pw) {
			u.Password = ""
			a.Log.Info().Str("login", u.Login).Str("role", string(u.Role)).Msg("signed in")
			return &u
		}
		fmt.Printf("Invalid login or password. %d tries left.\n", tries-1)
	}
	return nil
}

func (a *App) register() *model.User {
	banner("Create account")

	var login string
	for {
		login = a.io.readLine("Choose a login: ")
		if ok, why := validateLogin(a.Users, login); ok {
			break
		} else {
			fmt.Println("  " + why)
		}
	}

	var pw string
	for {
		pw = a.io.readPassword("Choose a password: ")
		pw2 := a.io.readPassword("Repeat password:   ")
		if pw != pw2 {
			fmt.Println("  Passwords do not match.")
			continue
		}
		if ok, why := validatePasswordStrength(pw); ok {
			break
		} else {
			fmt.Println("  " + why)
		}
	}

	// Only guests self-register, except that the very first account
	// may bootstrap itself as admin while no admin exists.
	role := model.RoleGuest
	if len(a.Users.ListByRole(model.RoleAdmin)) == 0 {
		if a.io.confirm("Register as ADMIN?") {
			role = model.RoleAdmin
		}
	}

	hash, err := utils.HashPassword(pw, a.Cfg.BcryptCost)
	if err != nil {
		a.Log.Error().Err(err).Msg("hash password")
		fmt.Println("Could not create account.")
		return nil
	}

	u := model.User{
		UserID:       newUserID(),
		Login:        login,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
		FirstName:    a.io.readOptional("First name (optional): "),
		LastName:     a.io.readOptional("Last name  (optional): "),
		Phone:        a.io.readOptional("Phone      (optional): "),
		Address:      a.io.readOptional("Address    (optional): "),
	}

	if err := a.Users.Upsert(u); err != nil {
		fmt.Println("Could not save user:", err)
		return nil
	}
	if err := a.Users.SaveAll(); err != nil {
		a.Log.Error().Err(err).Msg("save users")
		fmt.Println("Could not save user.")
		return nil
	}
	fmt.Printf("Account created (%s).\n", u.Role)
	return &u
}
