package generator

// firstNames is the default name corpus.
var firstNames = []string{
	"Aaron", "Abigail", "Adele", "Adrian", "Agatha", "Aileen", "Alan", "Albert",
	"Alberta", "Alexa", "Alfred", "Alice", "Alma", "Alvin", "Amanda", "Amber",
	"Amelia", "Andre", "Andrea", "Angela", "Anita", "Annabel", "Anthony", "Antonia",
	"Archie", "Ariel", "Arlene", "Arnold", "Arthur", "Audrey", "August", "Aurora",
	"Barbara", "Barney", "Beatrice", "Belinda", "Benedict", "Benjamin", "Bernard", "Bertha",
	"Beverly", "Bianca", "Blair", "Bonnie", "Boris", "Brenda", "Brian", "Bridget",
	"Bruno", "Byron", "Caleb", "Camilla", "Candice", "Carl", "Carmen", "Caroline",
	"Cecil", "Cecilia", "Celeste", "Charles", "Charlotte", "Chester", "Clara", "Clarence",
	"Claude", "Clifford", "Colin", "Constance", "Cora", "Cornelius", "Curtis", "Cynthia",
	"Daisy", "Damian", "Daniel", "Daphne", "Darius", "Deborah", "Delia", "Denise",
	"Dennis", "Desmond", "Diana", "Dolores", "Dominic", "Donald", "Dora", "Doris",
	"Dorothy", "Douglas", "Duncan", "Edgar", "Edith", "Edmund", "Edna", "Edward",
	"Eileen", "Elaine", "Eleanor", "Elias", "Eliza", "Ellis", "Elmer", "Eloise",
	"Elvira", "Emil", "Emily", "Emmett", "Enid", "Ernest", "Esther", "Ethel",
	"Eugene", "Eunice", "Evelyn", "Ezra", "Fabian", "Faith", "Felix", "Fiona",
	"Florence", "Floyd", "Frances", "Francis", "Franklin", "Frederick", "Gabriel", "Gail",
	"Georgia", "Gerald", "Gertrude", "Gideon", "Gilbert", "Gladys", "Glenn", "Gloria",
	"Gordon", "Grace", "Gregory", "Greta", "Gwendolyn", "Hannah", "Harold", "Harriet",
	"Harvey", "Hazel", "Hector", "Helen", "Henrietta", "Herbert", "Hilda", "Homer",
	"Horace", "Howard", "Hugo", "Ida", "Ignatius", "Imogen", "Ingrid", "Irene",
	"Iris", "Irving", "Isaac", "Isabel", "Ivan", "Ivy", "Jacob", "Jasper",
	"Jeanette", "Jerome", "Joan", "Jocelyn", "Josephine", "Judith", "Julian", "Juliet",
	"June", "Karl", "Katherine", "Keith", "Kenneth", "Lambert", "Laura", "Lawrence",
	"Leah", "Leonard", "Leopold", "Lillian", "Lionel", "Lois", "Lorena", "Louisa",
	"Lucille", "Lucius", "Luther", "Lydia", "Mabel", "Madeline", "Malcolm", "Marcel",
	"Margaret", "Marian", "Marvin", "Matilda", "Maurice", "Maxine", "Melvin", "Mildred",
	"Milton", "Miranda", "Mortimer", "Myrtle", "Nadine", "Nathaniel", "Nelson", "Nora",
	"Norman", "Octavia", "Olive", "Oliver", "Oscar", "Otto", "Pamela", "Patience",
	"Pearl", "Penelope", "Percy", "Philip", "Phoebe", "Priscilla", "Quentin", "Rachel",
	"Ralph", "Raymond", "Regina", "Rhoda", "Roland", "Rosalind", "Rufus", "Ruth",
	"Sabrina", "Samuel", "Selma", "Sheldon", "Sibyl", "Silas", "Stanley",
	"Stella", "Sylvia", "Thaddeus", "Thelma", "Theodore", "Tobias", "Ursula", "Valerie",
	"Vernon", "Victor", "Vincent", "Viola", "Virgil", "Vivian", "Wallace", "Walter",
	"Wanda", "Wilbur", "Wilfred", "Winifred", "Xavier", "Yolanda", "Yvonne", "Zachary",
}
