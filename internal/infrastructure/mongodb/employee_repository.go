package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
)

const employeesCollection = "employees"

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// employeeDoc forma del documento en la colección employees.
type employeeDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	FirstName        string             `bson:"first_name"`
	LastName         string             `bson:"last_name"`
	Email            string             `bson:"email"`
	Position         string             `bson:"position"`
	Salary           float64            `bson:"salary"`
	DateOfJoining    time.Time          `bson:"date_of_joining"`
	Department       string             `bson:"department"`
	ProfileImagePath string             `bson:"profile_image_path,omitempty"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

func (d *employeeDoc) toEntity() *entity.Employee {
	return &entity.Employee{
		ID:               d.ID.Hex(),
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		Email:            d.Email,
		Position:         d.Position,
		Salary:           d.Salary,
		DateOfJoining:    d.DateOfJoining,
		Department:       d.Department,
		ProfileImagePath: d.ProfileImagePath,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// EmployeeRepo implementación del puerto EmployeeRepository sobre MongoDB.
type EmployeeRepo struct {
	col *mongo.Collection
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(db *mongo.Database) *EmployeeRepo {
	return &EmployeeRepo{col: db.Collection(employeesCollection)}
}

// Find lista empleados. Con Department no vacío aplica una regex insensible a
// mayúsculas sobre el valor literal (subcadena, sin metacaracteres del cliente).
func (r *EmployeeRepo) Find(ctx context.Context, filter repository.EmployeeFilter) ([]*entity.Employee, error) {
	query := bson.M{}
	if filter.Department != "" {
		query["department"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(filter.Department),
			Options: "i",
		}
	}
	cur, err := r.col.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}
	defer cur.Close(ctx)

	var list []*entity.Employee
	for cur.Next(ctx) {
		var doc employeeDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode employee: %w", err)
		}
		list = append(list, doc.toEntity())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor employees: %w", err)
	}
	return list, nil
}

// FindByID obtiene un empleado por id; (nil, nil) si no existe.
func (r *EmployeeRepo) FindByID(ctx context.Context, id string) (*entity.Employee, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc employeeDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find employee by id: %w", err)
	}
	return doc.toEntity(), nil
}

// Create persiste un nuevo empleado. El store mantiene created_at/updated_at
// y genera el _id; lo devuelve en hex. Email duplicado -> domain.ErrDuplicate.
func (r *EmployeeRepo) Create(ctx context.Context, emp *entity.Employee) (string, error) {
	now := time.Now().UTC()
	doc := employeeDoc{
		FirstName:        emp.FirstName,
		LastName:         emp.LastName,
		Email:            emp.Email,
		Position:         emp.Position,
		Salary:           emp.Salary,
		DateOfJoining:    emp.DateOfJoining,
		Department:       emp.Department,
		ProfileImagePath: emp.ProfileImagePath,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if isDuplicateKey(err) {
			return "", domain.ErrDuplicate
		}
		return "", fmt.Errorf("insert employee: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert employee: id inesperado %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// UpdateByID aplica un $set parcial y devuelve el documento actualizado;
// (nil, nil) si el id no resuelve. La escritura es atómica a nivel documento.
func (r *EmployeeRepo) UpdateByID(ctx context.Context, id string, upd repository.EmployeeUpdate) (*entity.Employee, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.FirstName != nil {
		set["first_name"] = *upd.FirstName
	}
	if upd.LastName != nil {
		set["last_name"] = *upd.LastName
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Position != nil {
		set["position"] = *upd.Position
	}
	if upd.Salary != nil {
		set["salary"] = *upd.Salary
	}
	if upd.DateOfJoining != nil {
		set["date_of_joining"] = *upd.DateOfJoining
	}
	if upd.Department != nil {
		set["department"] = *upd.Department
	}
	if upd.ProfileImagePath != nil {
		set["profile_image_path"] = *upd.ProfileImagePath
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc employeeDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if isDuplicateKey(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return doc.toEntity(), nil
}

// DeleteByID elimina y devuelve el documento; (nil, nil) si el id no resuelve.
func (r *EmployeeRepo) DeleteByID(ctx context.Context, id string) (*entity.Employee, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc employeeDoc
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete employee: %w", err)
	}
	return doc.toEntity(), nil
}
