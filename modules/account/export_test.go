package account

var HashPasswordWith = hashPassword
