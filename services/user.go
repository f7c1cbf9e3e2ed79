package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"chat-audit/models"
)

// CreateUser creates a new user in the database. The plaintext password
// is hashed here; models.User never carries a plaintext password.
func CreateUser(ctx context.Context, user *models.User, password string) error {
	collection := database.Collection("users")

	// Check if user already exists with the same email
	existingUser := collection.FindOne(ctx, bson.M{"email": user.Email})
	if existingUser.Err() != mongo.ErrNoDocuments {
		return fmt.Errorf("user already exists with this email")
	}

	// Validate role
	if !models.IsValidRole(string(user.Role)) {
		return fmt.Errorf("invalid role: %s", user.Role)
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hashedPassword

	if user.UserID == "" {
		user.UserID = uuid.New().String()
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	user.IsActive = true

	_, err = collection.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("User created successfully",
		"userID", user.UserID,
		"username", user.Username,
		"role", user.Role)

	return nil
}

// GetUserByID retrieves a user by their public user ID
func GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	collection := database.Collection("users")

	var user models.User
	err := collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by their email
func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	collection := database.Collection("users")

	var user models.User
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}

	return &user, nil
}

// UpdateUser updates a user's information
func UpdateUser(ctx context.Context, userID string, update bson.M) error {
	collection := database.Collection("users")

	// Add updated timestamp
	update["updated_at"] = time.Now()

	// Validate role if it's being updated
	if role, exists := update["role"]; exists {
		if !models.IsValidRole(role.(string)) {
			return fmt.Errorf("invalid role: %s", role)
		}
	}

	result, err := collection.UpdateOne(
		ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": update},
	)

	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}

// DeleteUser soft deletes a user by setting is_active to false
func DeleteUser(ctx context.Context, userID string) error {
	return UpdateUser(ctx, userID, bson.M{"is_active": false})
}

// UpdateUserLastLogin updates the user's last login time
func UpdateUserLastLogin(ctx context.Context, userID string) error {
	return UpdateUser(ctx, userID, bson.M{"last_login": time.Now()})
}

// HashPassword generates a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// EnsureAdminUser creates the bootstrap admin account on startup when it
// does not exist yet. A missing email or password skips the bootstrap so
// a deployment can manage users out of band.
func EnsureAdminUser(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		slog.Info("Admin bootstrap skipped, no credentials configured")
		return nil
	}

	if _, err := GetUserByEmail(ctx, email); err == nil {
		return nil
	}

	admin := &models.User{
		Username: "admin",
		Email:    email,
		Role:     models.RoleAdmin,
	}
	if err := CreateUser(ctx, admin, password); err != nil {
		return fmt.Errorf("failed to bootstrap admin user: %w", err)
	}

	slog.Info("Bootstrap admin user created", "email", email)
	return nil
}
