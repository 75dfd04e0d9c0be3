package user

type CreateUserRequest struct {
	UserID   string `json:"user_id"`
	SlotType string `json:"slot_type"` // A или B, по умолчанию из конфига
}

// OptionalField хранит сырое значение поля. Set=false - поля в теле не было,
// Set=true с Raw "null" - поле явно обнулено.
type OptionalField struct {
	Set bool
	Raw []byte
}

func (f *OptionalField) UnmarshalJSON(data []byte) error {
	f.Set = true
	f.Raw = append(f.Raw[:0], data...)
	return nil
}

type UpdateUserRequest struct {
	SlotType *string       `json:"slot_type"`
	PlayedAt OptionalField `json:"played_at"`
}

type User struct {
	UserID   string  `json:"user_id"`
	SlotType string  `json:"slot_type"`
	PlayedAt *string `json:"played_at"`
}

type UserResponse struct {
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}

type UsersResponse struct {
	Users []User `json:"users"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
