package constants

// Session keys
const (
	SessionUserID   = "user_id"
	SessionEmail    = "email"
	SessionUsername = "username"
	SessionPicture  = "picture"
	SessionProvider = "provider"
	SessionLink     = "link"
	SessionToken    = "token"
	SessionState    = "state"
)

// Flash messages
const (
	MsgLoginRequired    = "You are not allowed to access there"
	MsgLoggedIn         = "You have been logged in!"
	MsgLoggedOut        = "You have been logged out!"
	MsgNotLoggedIn      = "You are not logged in, so you can't log out!"
	MsgItemNotFound     = "The requested item was not found!"
	MsgCategoryNotFound = "The requested category could not be found!"
	MsgItemCreated      = "Your new item has been created!"
	MsgItemEdited       = "The item has been edited!"
	MsgItemDeleted      = "The item has been deleted!"
	MsgCategoryCreated  = "The category has been created!"
	MsgCategoryEdited   = "The category has been edited!"
	MsgCategoryDeleted  = "The category has been deleted!"
	MsgNotYourItem      = "This is not your item!"
	MsgNotAuthorized    = "You are not authorized!"
	MsgMissingFields    = "Please submit all the required data!"
)

// Identity normalization defaults
const (
	PlaceholderEmailDomain = "users.item-catalog"
	DefaultPicture         = "/static/blank_user.gif"
	DefaultProfileLink     = "#"
)
