package broadcaster

const (
	EventOnlineUsers           = "getOnlineUsers"
	EventNewMessage            = "newMessage"
	EventNewGroupMessage       = "newGroupMessage"
	EventFriendRequestSent     = "friendRequestSent"
	EventFriendRequestResponse = "friendRequestResponse"
	EventFriendRemoved         = "friendRemoved"
)

// IsReservedEvent reports whether only the service itself may emit event.
func IsReservedEvent(event string) bool {
	return event == EventOnlineUsers
}
