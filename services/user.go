package services

import (
	"context"
	"errors"
	"log"

	db "github.com/krushnasaruk55/medflow-pro-6.0/config/db"
	redis "github.com/krushnasaruk55/medflow-pro-6.0/config/redis"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

func validateUserInput(data map[string]interface{}) error {
	if err := util.RequireFields(data, "username", "password", "name", "role"); err != nil {
		return err
	}
	role := data["role"].(string)
	switch role {
	case util.RoleAdmin, util.RoleReception, util.RoleDoctor, util.RolePharmacy, util.RoleLab:
		return nil
	}
	return errors.New(util.ROLE_NOT_ALLOWED)
}

// usernameTakenFilter scopes the uniqueness check to one hospital; the
// same username registered under another hospital does not match.
func usernameTakenFilter(hospitalId string, username interface{}) bson.M {
	return bson.M{"hospitalId": hospitalId, "username": username}
}

/*
* Check the username is free inside this hospital before inserting
* Same username in another hospital is fine; the compound unique index on
* (hospitalId, username) is the backstop for races
 */
func createUserRecord(ctx context.Context, data map[string]interface{}, hospitalId string) (string, error) {
	coll := db.OpenCollections(util.UserCollection)

	count, err := db.CountDocuments(ctx, coll, usernameTakenFilter(hospitalId, data["username"]))
	if err != nil {
		log.Println("Error from countDocuments for username:", err)
		return "", err
	}
	if count > 0 {
		return "", errors.New(util.USERNAME_ALREADY_EXISTS)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data["password"].(string)), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Error from bcrypt generate:", err)
		return "", err
	}
	data["password"] = string(hash)

	seq, err := db.NextSequence(ctx, util.UserCollection)
	if err != nil {
		log.Println("Error from nextSequence:", err)
		return "", err
	}
	code := util.FormatCode("USR", seq)
	data["code"] = code
	data["hospitalId"] = hospitalId
	data["isActive"] = true

	if _, err := db.CreateOne(ctx, coll, data); err != nil {
		log.Println("Error from createOne for user:", err)
		return "", err
	}
	return code, nil
}

func CreateUser(c *gin.Context, data map[string]interface{}) (string, error) {
	if err := validateUserInput(data); err != nil {
		log.Println("Error from validateUserInput:", err)
		return "", err
	}
	hospitalId := c.GetString("hospitalId")
	createdBy := c.GetString("code")
	if createdBy == "" {
		return "", errors.New(util.MISSING_CREATOR_CODE)
	}
	util.PrepareAudit(data, createdBy)

	code, err := createUserRecord(c, data, hospitalId)
	if err != nil {
		return "", err
	}
	return code, nil
}

func FetchUserByCode(c *gin.Context, userId string) (map[string]interface{}, error) {
	hospitalId := c.GetString("hospitalId")
	key := util.UserKey + userId

	if cached, exists, err := redis.GetCache(c, key); exists && err == nil {
		if cached["hospitalId"] == hospitalId {
			delete(cached, "password")
			return cached, nil
		}
	}

	coll := db.OpenCollections(util.UserCollection)
	result := make(map[string]interface{})
	if err := db.FindOne(c, coll, bson.M{"code": userId, "hospitalId": hospitalId}, &result); err != nil {
		log.Println("Error from findOne for user:", err)
		return nil, errors.New(util.USER_NOT_FOUND)
	}
	if err := redis.SetCache(c, key, result); err != nil {
		log.Println("Failed caching user:", err)
	}
	delete(result, "password")
	return result, nil
}

func FetchAllUsers(c *gin.Context) ([]map[string]interface{}, error) {
	hospitalId := c.GetString("hospitalId")
	filter := bson.M{"hospitalId": hospitalId}
	if role := c.Query("role"); role != "" {
		filter["role"] = role
	}

	coll := db.OpenCollections(util.UserCollection)
	users, err := db.FindAll(c, coll, filter, nil)
	if err != nil {
		log.Println("Error from findAll for users:", err)
		return nil, err
	}
	for _, u := range users {
		delete(u, "password")
	}
	return users, nil
}

func UpdateUserByCode(c *gin.Context, userId string, data map[string]interface{}) (string, error) {
	hospitalId := c.GetString("hospitalId")
	updatedBy := c.GetString("code")

	// username and code are immutable once created
	delete(data, "code")
	delete(data, "username")
	delete(data, "hospitalId")

	if raw, ok := data["password"]; ok {
		pw, ok := raw.(string)
		if !ok || pw == "" {
			delete(data, "password")
		} else {
			hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
			if err != nil {
				log.Println("Error from bcrypt generate:", err)
				return "", err
			}
			data["password"] = string(hash)
		}
	}
	util.StampUpdate(data, updatedBy)

	coll := db.OpenCollections(util.UserCollection)
	result, err := db.UpdateOne(c, coll, bson.M{"code": userId, "hospitalId": hospitalId}, bson.M{"$set": data})
	if err != nil {
		log.Println("Error from updateOne for user:", err)
		return "", err
	}
	if result.MatchedCount == 0 {
		return "", errors.New(util.USER_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, util.UserKey+userId); err != nil {
		log.Println("Failed invalidating user cache:", err)
	}
	return "user updated", nil
}

func DeleteUser(c *gin.Context, userId string) (string, error) {
	hospitalId := c.GetString("hospitalId")

	coll := db.OpenCollections(util.UserCollection)
	result, err := db.DeleteOne(c, coll, bson.M{"code": userId, "hospitalId": hospitalId})
	if err != nil {
		log.Println("Error from deleteOne for user:", err)
		return "", err
	}
	if result.DeletedCount == 0 {
		return "", errors.New(util.USER_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, util.UserKey+userId); err != nil {
		log.Println("Failed invalidating user cache:", err)
	}
	return "user deleted", nil
}
