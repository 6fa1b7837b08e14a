package entities

import "time"

type NotificationType string

const (
	NotificationCourierAssigned NotificationType = "courier_assigned"
	NotificationParcelPlaced    NotificationType = "parcel_placed"
	NotificationParcelPickedUp  NotificationType = "parcel_picked_up"
	NotificationPickupReminder  NotificationType = "pickup_reminder"
)

type Notification struct {
	Type       NotificationType
	PurchaseID int64
	// Покупатель, для назначения - курьер
	UserID   int64
	LockerID int64
	SlotID   int64
	ClientQR string
	At       time.Time
}

type Role string

const (
	RoleClient  Role = "client"
	RoleCourier Role = "courier"
	RoleStaff   Role = "staff"
)

type Caller struct {
	ID   int64
	Role Role
}
