package services

import (
	"context"
	"errors"
	"log"
	"time"

	authorization "github.com/krushnasaruk55/medflow-pro-6.0/config/authorization"
	db "github.com/krushnasaruk55/medflow-pro-6.0/config/db"
	redis "github.com/krushnasaruk55/medflow-pro-6.0/config/redis"
	"github.com/krushnasaruk55/medflow-pro-6.0/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

func validateLoginInput(data map[string]interface{}) error {
	if err := util.GetTrimmedString(data, "username"); err != nil {
		return errors.New(util.PLEASE_PROVIDE_USERNAME_AND_PASSWORD)
	}
	if err := util.GetTrimmedString(data, "password"); err != nil {
		return errors.New(util.PLEASE_PROVIDE_USERNAME_AND_PASSWORD)
	}
	if err := util.GetTrimmedString(data, "hospitalId"); err != nil {
		return err
	}
	return nil
}

func FetchUserByUsername(ctx context.Context, hospitalId, username string) (map[string]interface{}, error) {
	coll := db.OpenCollections(util.UserCollection)
	result := make(map[string]interface{})

	err := db.FindOne(ctx, coll, bson.M{"hospitalId": hospitalId, "username": username}, &result)
	if err != nil {
		return nil, errors.New(util.INVALID_CREDENTIALS)
	}
	return result, nil
}

/*
* Validate username, password and hospitalId
* Find the user scoped to the hospital and compare the bcrypt hash
* Issue a JWT carrying code, role and hospitalId and return it with the user
 */
func Login(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if err := validateLoginInput(data); err != nil {
		log.Println("Error from validateLoginInput:", err)
		return nil, err
	}

	hospitalId := data["hospitalId"].(string)
	username := data["username"].(string)

	user, err := FetchUserByUsername(c, hospitalId, username)
	if err != nil {
		log.Println("Error from fetchUserByUsername:", err)
		return nil, err
	}

	hashed, ok := user["password"].(string)
	if !ok {
		log.Println("Password missing on user document")
		return nil, errors.New(util.INVALID_CREDENTIALS)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(data["password"].(string))); err != nil {
		return nil, errors.New(util.INVALID_CREDENTIALS)
	}

	if active, ok := user["isActive"].(bool); ok && !active {
		return nil, errors.New(util.INVALID_CREDENTIALS)
	}

	code, _ := user["code"].(string)
	role, _ := user["role"].(string)
	token, err := authorization.GenerateToken(code, username, role, hospitalId)
	if err != nil {
		log.Println("Error from generateToken:", err)
		return nil, err
	}

	delete(user, "password")
	return map[string]interface{}{
		"token": token,
		"user":  user,
	}, nil
}

/*
* Bootstrap route: create the hospital document and its first admin user
* The admin block is validated like any other user create
 */
func RegisterHospital(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if err := util.RequireFields(data, "name"); err != nil {
		return nil, err
	}
	rawAdmin, ok := data["admin"].(map[string]interface{})
	if !ok {
		return nil, errors.New("admin block not provided")
	}
	if err := util.RequireFields(rawAdmin, "username", "password", "name"); err != nil {
		return nil, err
	}

	seq, err := db.NextSequence(c, util.HospitalCollection)
	if err != nil {
		log.Println("Error from nextSequence:", err)
		return nil, err
	}
	hospitalId := util.FormatCode("HOS", seq)

	hospital := map[string]interface{}{
		"code":        hospitalId,
		"name":        data["name"],
		"address":     data["address"],
		"phoneNo":     data["phoneNo"],
		"mail":        data["mail"],
		"departments": util.ValidDepartments,
		"isActive":    true,
	}
	util.PrepareAudit(hospital, hospitalId)

	coll := db.OpenCollections(util.HospitalCollection)
	if _, err := db.CreateOne(c, coll, hospital); err != nil {
		log.Println("Error from createOne for hospital:", err)
		return nil, err
	}
	if err := redis.SetCache(c, util.HospitalKey+hospitalId, hospital); err != nil {
		log.Println("Failed caching new hospital:", err)
	}

	rawAdmin["role"] = util.RoleAdmin
	rawAdmin["hospitalId"] = hospitalId
	util.PrepareAudit(rawAdmin, hospitalId)
	userCode, err := createUserRecord(c, rawAdmin, hospitalId)
	if err != nil {
		log.Println("Error from createUserRecord for admin:", err)
		return nil, err
	}

	return map[string]interface{}{
		"hospitalId": hospitalId,
		"adminCode":  userCode,
	}, nil
}

/*
* Verify the old password before writing the new hash
 */
func ChangePassword(c *gin.Context, data map[string]interface{}) (string, error) {
	if err := util.RequireFields(data, "oldPassword", "newPassword"); err != nil {
		return "", err
	}
	code := c.GetString("code")
	hospitalId := c.GetString("hospitalId")

	coll := db.OpenCollections(util.UserCollection)
	user := make(map[string]interface{})
	if err := db.FindOne(c, coll, bson.M{"code": code, "hospitalId": hospitalId}, &user); err != nil {
		log.Println("Error from findOne for user:", err)
		return "", errors.New(util.USER_NOT_FOUND)
	}

	hashed, _ := user["password"].(string)
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(data["oldPassword"].(string))); err != nil {
		return "", errors.New(util.INVALID_CREDENTIALS)
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(data["newPassword"].(string)), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Error from bcrypt generate:", err)
		return "", err
	}
	update := bson.M{"$set": bson.M{"password": string(newHash), "updatedAt": time.Now(), "updatedBy": code}}
	if _, err := db.UpdateOne(c, coll, bson.M{"code": code, "hospitalId": hospitalId}, update); err != nil {
		log.Println("Error from updateOne for password:", err)
		return "", err
	}
	if err := redis.DeleteCache(c, util.UserKey+code); err != nil {
		log.Println("Failed invalidating user cache:", err)
	}
	return "password updated", nil
}
